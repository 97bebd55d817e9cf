package calligraphy

import "testing"

func TestMoveToStartsOpenRegularHead(t *testing.T) {
	p := MoveTo(1, 2)
	if p.Ring.Pos(p.First) != (Point{X: 1, Y: 2}) {
		t.Fatalf("head position = %v, want {1 2}", p.Ring.Pos(p.First))
	}
	if !p.Ring.Left(p.First).IsOpen() {
		t.Fatalf("head Left = %v, want Open", p.Ring.Left(p.First))
	}
	if !p.Ring.Right(p.First).IsRegular() {
		t.Fatalf("head Right = %v, want Regular", p.Ring.Right(p.First))
	}
	if p.Ring.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Ring.Len())
	}
}

func TestLineToSetsExplicitThirdPointControls(t *testing.T) {
	p := MoveTo(0, 0).LineTo(3, 0)

	head := p.First
	tail := p.Ring.Succ(head)

	right := p.Ring.Right(head)
	if !right.IsExplicit() || right.Control != (Point{X: 1, Y: 0}) {
		t.Fatalf("head Right = %v, want Explicit{1 0}", right)
	}
	left := p.Ring.Left(tail)
	if !left.IsExplicit() || left.Control != (Point{X: 2, Y: 0}) {
		t.Fatalf("tail Left = %v, want Explicit{2 0}", left)
	}
	if !p.Ring.Right(tail).IsRegular() {
		t.Fatalf("tail Right = %v, want Regular", p.Ring.Right(tail))
	}
	if p.Ring.Pos(tail) != (Point{X: 3, Y: 0}) {
		t.Fatalf("tail position = %v, want {3 0}", p.Ring.Pos(tail))
	}
}

func TestCurveToUsesGivenControlsVerbatim(t *testing.T) {
	p := MoveTo(0, 0).CurveTo(1, 1, 2, 1, 3, 0)

	head := p.First
	tail := p.Ring.Succ(head)

	right := p.Ring.Right(head)
	if !right.IsExplicit() || right.Control != (Point{X: 1, Y: 1}) {
		t.Fatalf("head Right = %v, want Explicit{1 1}", right)
	}
	left := p.Ring.Left(tail)
	if !left.IsExplicit() || left.Control != (Point{X: 2, Y: 1}) {
		t.Fatalf("tail Left = %v, want Explicit{2 1}", left)
	}
	if !p.Ring.Right(tail).IsRegular() {
		t.Fatalf("tail Right = %v, want Regular", p.Ring.Right(tail))
	}
}

func TestExtendingPathKeepsPriorTailRegularUntilFurtherExtended(t *testing.T) {
	p := MoveTo(0, 0).LineTo(2, 0)
	mid := p.Ring.Succ(p.First)
	if !p.Ring.Right(mid).IsRegular() {
		t.Fatalf("mid Right = %v, want Regular before further extension", p.Ring.Right(mid))
	}

	p.LineTo(2, 2)
	if p.Ring.Right(mid).IsRegular() {
		t.Fatalf("mid Right still Regular after extension, want Explicit")
	}
	if !p.Ring.Right(mid).IsExplicit() {
		t.Fatalf("mid Right = %v, want Explicit", p.Ring.Right(mid))
	}

	newTail := p.Ring.Succ(mid)
	if !p.Ring.Right(newTail).IsRegular() {
		t.Fatalf("new tail Right = %v, want Regular", p.Ring.Right(newTail))
	}
	if p.Ring.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Ring.Len())
	}
}

func TestCloseIsNoOpOnAnAlreadyCyclicRing(t *testing.T) {
	p := MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1)
	before := p.Ring.Len()
	closed := p.Close()
	if closed != p {
		t.Fatalf("Close() returned a different *Path")
	}
	if p.Ring.Len() != before {
		t.Fatalf("Close() changed ring length: %d -> %d", before, p.Ring.Len())
	}
	if p.Ring.Succ(p.Ring.Pred(p.First)) != p.First {
		t.Fatalf("ring is not cyclic around First after Close()")
	}
}
