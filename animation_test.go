package shapegrid

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenLocationReachesTarget(t *testing.T) {
	tree := NewTree(800, 600)
	n := mustChild(t, tree.Root(), NodeOptions{Location: Vec2{10, 20}, Size: Size{10, 10}})
	child := mustChild(t, n, NodeOptions{Size: Size{2, 2}})

	tw := TweenLocation(n, Vec2{100, 200}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	tw.Update(0.5)
	if tw.Done {
		t.Fatal("Done after half the duration")
	}
	if got := n.Location(); math.Abs(got.X-55) > 0.5 || math.Abs(got.Y-110) > 0.5 {
		t.Errorf("midpoint = %v, want ~(55, 110)", got)
	}
	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if got := n.Location(); math.Abs(got.X-100) > 0.5 || math.Abs(got.Y-200) > 0.5 {
		t.Errorf("Location = %v, want ~(100, 200)", got)
	}
	// Children follow through the setter.
	assertConsistent(t, tree)
	if got := child.AbsoluteCenter(); got != n.AbsoluteCenter() {
		t.Errorf("child center = %v, want %v", got, n.AbsoluteCenter())
	}
}

func TestTweenSizeReachesTarget(t *testing.T) {
	tree := NewTree(800, 600)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{10, 10}})

	tw := TweenSize(n, Size{50, 30}, 0.5, ease.Linear)
	tw.Update(0.25)
	tw.Update(0.25)

	if !tw.Done {
		t.Fatal("expected Done")
	}
	if got := n.Size(); math.Abs(got.W-50) > 0.1 || math.Abs(got.H-30) > 0.1 {
		t.Errorf("Size = %v, want ~50x30", got)
	}
}

func TestTweenSizeNeverNegative(t *testing.T) {
	tree := NewTree(100, 100)
	n := mustChild(t, tree.Root(), NodeOptions{Size: Size{10, 10}})

	// InBack dips below the start value before heading to the target.
	tw := TweenSize(n, Size{0, 0}, 1, ease.InOutBack)
	for !tw.Done {
		tw.Update(0.05)
		if s := n.Size(); s.W < 0 || s.H < 0 {
			t.Fatalf("Size = %v, want non-negative", s)
		}
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	tree := NewTree(100, 100)
	n := mustChild(t, tree.Root(), NodeOptions{})
	tw := TweenLocation(n, Vec2{5, 5}, 0.1, ease.Linear)
	tw.Update(1)
	n.SetLocation(Vec2{-3, -3})
	tw.Update(1)
	if got := n.Location(); got != (Vec2{-3, -3}) {
		t.Errorf("Location = %v, want untouched after Done", got)
	}
}

func TestTweenValue(t *testing.T) {
	var got float64
	tw := TweenValue(0, 1, 1, ease.Linear, func(v float64) { got = v })
	tw.Update(0.5)
	if math.Abs(got-0.5) > 0.01 {
		t.Errorf("value = %v, want ~0.5", got)
	}
	tw.Update(0.5)
	if !tw.Done || math.Abs(got-1) > 0.01 {
		t.Errorf("value = %v, Done = %v, want ~1 and done", got, tw.Done)
	}
}
