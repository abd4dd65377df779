package tracker

import (
	"image"
	"image/color"
	"testing"

	"xeyes/internal/entity"
)

type fillOp struct {
	r image.Rectangle
	c color.Color
}

type recorder struct {
	ops []fillOp
}

func (r *recorder) FillEllipse(rect image.Rectangle, c color.Color) {
	r.ops = append(r.ops, fillOp{rect, c})
}

func pupilCenter(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestUpdateIdempotent(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}
	origin := image.Pt(200, 300)
	cursor := image.Pt(500, 500)

	if !tr.Update(rec, cursor, origin, false) {
		t.Fatal("first Update() drew nothing")
	}
	n := len(rec.ops)
	if n == 0 {
		t.Fatal("first Update() recorded no ops")
	}

	if tr.Update(rec, cursor, origin, false) {
		t.Error("second Update() with same cursor reported drawing")
	}
	if len(rec.ops) != n {
		t.Errorf("second Update() drew %d ops, want 0", len(rec.ops)-n)
	}

	if !tr.Update(rec, cursor, origin, true) {
		t.Error("forced Update() did not draw")
	}
}

func TestUpdateFirstPaintSkipsErase(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}

	tr.Update(rec, image.Pt(10, 10), image.Point{}, false)

	if len(rec.ops) != entity.NumEyes {
		t.Fatalf("first paint recorded %d ops, want %d", len(rec.ops), entity.NumEyes)
	}
	for i, op := range rec.ops {
		if op.c != ColPupil {
			t.Errorf("op %d color = %v, want pupil", i, op.c)
		}
	}

	rec.ops = nil
	prev := tr.Eyes().Eyes
	tr.Update(rec, image.Pt(400, 10), image.Point{}, false)

	if len(rec.ops) != 2*entity.NumEyes {
		t.Fatalf("second paint recorded %d ops, want %d", len(rec.ops), 2*entity.NumEyes)
	}
	for i := 0; i < entity.NumEyes; i++ {
		erase, paint := rec.ops[2*i], rec.ops[2*i+1]
		if erase.c != ColWhite || erase.r != prev[i].Prev {
			t.Errorf("eye %d: erase = %+v, want white over %v", i, erase, prev[i].Prev)
		}
		if paint.c != ColPupil {
			t.Errorf("eye %d: paint color = %v, want pupil", i, paint.c)
		}
	}
}

func TestUpdateClampsFarCursor(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}
	origin := image.Pt(40, 60)
	pair := tr.Eyes()
	left := pair.Eyes[entity.Left].Center

	cursor := origin.Add(left).Add(image.Pt(1000, 0))
	tr.Update(rec, cursor, origin, false)

	got := tr.Eyes().Eyes[entity.Left].Prev
	want := image.Rectangle{
		Min: left.Add(image.Pt(16, 0)).Sub(pair.Geo.Pupil),
		Max: left.Add(image.Pt(16, 0)).Add(pair.Geo.Pupil),
	}
	if got != want {
		t.Errorf("left pupil = %v, want %v", got, want)
	}
}

func TestUpdateFollowsCursorInsideTravel(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}
	origin := image.Pt(0, 0)
	right := tr.Eyes().Eyes[entity.Right].Center

	offsets := []image.Point{{3, 0}, {0, -4}, {-5, 5}, {2, 7}, {-1, -1}}
	for _, off := range offsets {
		tr.Update(rec, right.Add(off), origin, false)
		box := tr.Eyes().Eyes[entity.Right].Prev
		if got, want := pupilCenter(box), right.Add(off); got != want {
			t.Errorf("offset %v: pupil center = %v, want cursor %v", off, got, want)
		}
	}
}

func TestUpdateCursorAtCenter(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}
	left := tr.Eyes().Eyes[entity.Left].Center

	tr.Update(rec, left, image.Point{}, false)

	if got := pupilCenter(tr.Eyes().Eyes[entity.Left].Prev); got != left {
		t.Errorf("pupil center = %v, want socket center %v", got, left)
	}
}

func TestDisplacementBounded(t *testing.T) {
	travel := image.Pt(16, 22)
	for x := -300; x <= 300; x += 13 {
		for y := -300; y <= 300; y += 17 {
			rel := image.Pt(x, y)
			d := Displacement(rel, travel)
			if abs(d.X) > travel.X || abs(d.Y) > travel.Y {
				t.Fatalf("Displacement(%v) = %v exceeds travel %v", rel, d, travel)
			}
			if sq(d) > sq(rel) {
				t.Fatalf("Displacement(%v) = %v overshoots the cursor", rel, d)
			}
		}
	}
}

func TestDisplacement(t *testing.T) {
	travel := image.Pt(16, 22)
	tests := []struct {
		name string
		rel  image.Point
		want image.Point
	}{
		{"zero", image.Pt(0, 0), image.Pt(0, 0)},
		{"far right", image.Pt(1000, 0), image.Pt(16, 0)},
		{"far up", image.Pt(0, -1000), image.Pt(0, -22)},
		{"inside", image.Pt(3, 4), image.Pt(3, 4)},
		{"diagonal far", image.Pt(300, 400), image.Pt(9, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Displacement(tt.rel, travel); got != tt.want {
				t.Errorf("Displacement(%v) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestRepaintForcesPupils(t *testing.T) {
	tr := New(150, 100)
	rec := &recorder{}
	cursor := image.Pt(75, 50)

	tr.Update(rec, cursor, image.Point{}, false)
	rec.ops = nil

	tr.Repaint(rec, 300, 200, cursor, image.Point{})

	// 2 outer + 2 inner sockets, then 2 pupils without erase.
	if len(rec.ops) != 6 {
		t.Fatalf("Repaint recorded %d ops, want 6", len(rec.ops))
	}
	for i := 0; i < 2; i++ {
		if rec.ops[i].c != ColSocket {
			t.Errorf("op %d = %v, want socket", i, rec.ops[i].c)
		}
	}
	for i := 2; i < 4; i++ {
		if rec.ops[i].c != ColWhite {
			t.Errorf("op %d = %v, want white", i, rec.ops[i].c)
		}
	}
	if geo := tr.Eyes().Geo; geo.Outer[entity.Right].Max.X != 299 {
		t.Errorf("geometry not relaid out: %v", geo.Outer)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
