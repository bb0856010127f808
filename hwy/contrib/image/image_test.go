package image

import (
	"testing"
	"unsafe"

	"github.com/ajroetker/go-dynimage/hwy"
)

func TestNew(t *testing.T) {
	img := New[float32, C1](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	// Stride should be >= width and rows aligned to the SIMD width
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.BytesPerRow()%hwy.RowAlign() != 0 {
		t.Errorf("BytesPerRow not aligned: got %d, want multiple of %d", img.BytesPerRow(), hwy.RowAlign())
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	img := New[float32, C3](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if !img.Ptr().IsEmpty() {
		t.Error("Ptr of empty image should be empty")
	}

	img = New[float32, C3](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
}

func TestNew_Options(t *testing.T) {
	packed := New[uint8, C3](5, 4, WithPacked())
	if packed.BytesPerRow() != 15 {
		t.Errorf("Packed BytesPerRow: got %d, want 15", packed.BytesPerRow())
	}

	aligned := New[uint8, C3](5, 4, WithRowAlign(64))
	if aligned.BytesPerRow() != 64 {
		t.Errorf("Aligned BytesPerRow: got %d, want 64", aligned.BytesPerRow())
	}

	// 3 bytes per row rounded to 4 bytes must still hold whole uint16 elements
	odd := New[uint16, C1](3, 2, WithRowAlign(4))
	if odd.Stride() != 4 {
		t.Errorf("Odd stride: got %d, want 4", odd.Stride())
	}

	defer func() {
		if recover() == nil {
			t.Error("WithRowAlign(0) should panic")
		}
	}()
	WithRowAlign(0)
}

func TestPtr_Row(t *testing.T) {
	img := New[float32, C3](10, 5)
	p := img.Ptr()

	// Set values in first row
	row0 := p.Row(0)
	if len(row0) != 30 {
		t.Fatalf("Row length: got %d, want 30", len(row0))
	}
	for i := range row0 {
		row0[i] = float32(i)
	}

	// Read back through the owning image
	for i := range 30 {
		if img.Pix()[i] != float32(i) {
			t.Errorf("Pix[%d]: got %v, want %v", i, img.Pix()[i], float32(i))
		}
	}

	// Different row should be independent
	row1 := p.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	// Out of bounds
	if p.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if p.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestPtr_AtSet(t *testing.T) {
	p := New[uint8, C4](10, 10).Ptr()

	p.Set(5, 7, 2, 42)
	if got := p.At(5, 7, 2); got != 42 {
		t.Errorf("At(5,7,2): got %v, want 42", got)
	}
	if got := p.Pixel(5, 7); len(got) != 4 || got[2] != 42 {
		t.Errorf("Pixel(5,7): got %v", got)
	}

	// Out of bounds should return zero
	if got := p.At(-1, 0, 0); got != 0 {
		t.Errorf("At(-1,0,0): got %v, want 0", got)
	}
	if got := p.At(0, 0, 4); got != 0 {
		t.Errorf("At(0,0,4): got %v, want 0", got)
	}
	if got := p.At(10, 0, 0); got != 0 {
		t.Errorf("At(10,0,0): got %v, want 0", got)
	}

	// Set out of bounds should be no-op
	p.Set(-1, 0, 0, 99)
	p.Set(0, 0, 4, 99)
	p.Set(10, 0, 0, 99)
}

func TestPtr_Accessors(t *testing.T) {
	img := New[int16, C2](7, 3, WithRowAlign(32))
	p := img.Ptr()

	if p.ChannelSize() != 2 {
		t.Errorf("ChannelSize: got %d, want 2", p.ChannelSize())
	}
	if p.ElemSize() != 2 {
		t.Errorf("ElemSize: got %d, want 2", p.ElemSize())
	}
	if p.MoveStep() != 32 {
		t.Errorf("MoveStep: got %d, want 32", p.MoveStep())
	}
	if p.Data() != unsafe.Pointer(&img.Pix()[0]) {
		t.Error("Data should point at the first element of Pix")
	}
	if got := p.Size(); got != (Size{Width: 7, Height: 3}) {
		t.Errorf("Size: got %v, want 7x3", got)
	}
}

func TestNewPtr(t *testing.T) {
	buf := make([]uint8, 40)

	p := NewPtr[uint8, C3](&buf[0], 0, 4, 2)
	if p.MoveStep() != 12 {
		t.Errorf("Packed step: got %d, want 12", p.MoveStep())
	}

	if q := NewPtr[uint8, C3](&buf[0], 10, 4, 2); !q.IsEmpty() {
		t.Error("Step smaller than the packed row should give an empty view")
	}
	if q := NewPtr[uint8, C3](nil, 12, 4, 2); !q.IsEmpty() {
		t.Error("Nil data should give an empty view")
	}
}

func TestFromSlice(t *testing.T) {
	buf := make([]uint16, 20)

	p := FromSlice[uint16, C2](buf, 3, 3, 14)
	if p.IsEmpty() {
		t.Fatal("FromSlice should accept a buffer of exactly (h-1)*step+packed bytes")
	}
	p.Set(2, 2, 1, 7)
	// row 2 starts at byte 28 = element 14; pixel 2 component 1 is element 14+5
	if buf[19] != 7 {
		t.Errorf("buf[19]: got %d, want 7", buf[19])
	}

	if q := FromSlice[uint16, C2](buf[:19], 3, 3, 14); !q.IsEmpty() {
		t.Error("Short slice should give an empty view")
	}
}

func TestPtr_Sub(t *testing.T) {
	img := New[uint8, C1](10, 10)
	p := img.Ptr()
	for y := range 10 {
		for x := range 10 {
			p.Set(x, y, 0, uint8(y*10+x))
		}
	}

	sub := p.Sub(Rect{X0: 2, Y0: 3, X1: 6, Y1: 5})
	if sub.Width() != 4 || sub.Height() != 2 {
		t.Fatalf("Sub size: got %dx%d, want 4x2", sub.Width(), sub.Height())
	}
	if got := sub.At(0, 0, 0); got != 32 {
		t.Errorf("Sub.At(0,0): got %d, want 32", got)
	}
	if sub.MoveStep() != p.MoveStep() {
		t.Error("Sub should keep the parent step")
	}

	// Writes go to the parent
	sub.Set(1, 1, 0, 200)
	if got := p.At(3, 4, 0); got != 200 {
		t.Errorf("Parent At(3,4): got %d, want 200", got)
	}

	// Clipped to bounds
	clipped := p.Sub(Rect{X0: 8, Y0: 8, X1: 20, Y1: 20})
	if clipped.Width() != 2 || clipped.Height() != 2 {
		t.Errorf("Clipped size: got %dx%d, want 2x2", clipped.Width(), clipped.Height())
	}
	if !p.Sub(Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}).IsEmpty() {
		t.Error("Disjoint Sub should be empty")
	}
}

func TestConstPtr(t *testing.T) {
	img := New[float64, C1](4, 4)
	img.Ptr().Set(1, 2, 0, 3.5)

	c := img.ConstPtr()
	if got := c.At(1, 2, 0); got != 3.5 {
		t.Errorf("ConstPtr.At: got %v, want 3.5", got)
	}
	if c.Data() != img.Ptr().Data() {
		t.Error("ConstPtr should alias the image")
	}

	row := c.AppendRow(nil, 2)
	row[1] = 99
	if img.Ptr().At(1, 2, 0) != 3.5 {
		t.Error("AppendRow must copy")
	}
	if got := c.Sub(Rect{X0: 1, Y0: 2, X1: 2, Y1: 3}).At(0, 0, 0); got != 3.5 {
		t.Errorf("ConstPtr.Sub: got %v, want 3.5", got)
	}
}

func TestImage_Clone(t *testing.T) {
	img := New[float32, C1](10, 10)
	img.Ptr().Set(5, 5, 0, 42.0)

	clone := img.Clone()

	// Should have same dimensions
	if clone.Width() != img.Width() || clone.Height() != img.Height() {
		t.Error("Clone dimensions differ")
	}

	// Should have same data
	if clone.Ptr().At(5, 5, 0) != 42.0 {
		t.Errorf("Clone data: got %v, want 42.0", clone.Ptr().At(5, 5, 0))
	}

	// Should be independent
	clone.Ptr().Set(5, 5, 0, 100.0)
	if img.Ptr().At(5, 5, 0) != 42.0 {
		t.Error("Clone should be independent")
	}
}

func TestPtr_FillClear(t *testing.T) {
	img := New[int32, C2](10, 10)
	p := img.Ptr()

	p.Fill(42)
	for y := range 10 {
		for x := range 10 {
			if p.At(x, y, 1) != 42 {
				t.Errorf("Fill: At(%d,%d,1) = %v, want 42", x, y, p.At(x, y, 1))
			}
		}
	}

	img.Clear()
	for y := range 10 {
		for x := range 10 {
			if p.At(x, y, 0) != 0 {
				t.Errorf("Clear: At(%d,%d,0) = %v, want 0", x, y, p.At(x, y, 0))
			}
		}
	}
}

func TestSameSize(t *testing.T) {
	a := New[float32, C1](100, 50).Ptr()
	b := New[uint8, C3](100, 50).Ptr()
	c := New[float32, C1](50, 100).Ptr()

	if !SameSize(a, b) {
		t.Error("SameSize should work across element types and channel counts")
	}
	if SameSize(a, c) {
		t.Error("SameSize should return false for different dimensions")
	}
}

func TestRect(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 100, Y1: 80}

	if r.Width() != 90 {
		t.Errorf("Width: got %d, want 90", r.Width())
	}
	if r.Height() != 60 {
		t.Errorf("Height: got %d, want 60", r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty should be false")
	}
	if got := XYWH(10, 20, 90, 60); got != r {
		t.Errorf("XYWH: got %v, want %v", got, r)
	}

	negative := Rect{X0: 10, Y0: 10, X1: 5, Y1: 5}
	if !negative.IsEmpty() {
		t.Error("Negative-area rect should be empty")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}
	b := Rect{X0: 50, Y0: 50, X1: 150, Y1: 150}

	intersect := a.Intersect(b)
	if intersect != (Rect{X0: 50, Y0: 50, X1: 100, Y1: 100}) {
		t.Errorf("Intersect: got %v", intersect)
	}

	// Non-overlapping
	c := Rect{X0: 200, Y0: 200, X1: 300, Y1: 300}
	if !a.Intersect(c).IsEmpty() {
		t.Error("Non-overlapping rects should have empty intersection")
	}
}

func TestRect_In(t *testing.T) {
	outer := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}

	if !(Rect{X0: 2, Y0: 2, X1: 10, Y1: 10}).In(outer) {
		t.Error("Touching the far edge is inside")
	}
	if (Rect{X0: 2, Y0: 2, X1: 11, Y1: 10}).In(outer) {
		t.Error("Past the far edge is outside")
	}
	if (Rect{X0: -1, Y0: 0, X1: 3, Y1: 3}).In(outer) {
		t.Error("Negative origin is outside")
	}
}

// Benchmarks

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = New[uint8, C3](1920, 1080)
	}
}

func BenchmarkPtr_RowAccess(b *testing.B) {
	p := New[uint8, C3](1920, 1080).Ptr()

	b.ReportAllocs()

	for b.Loop() {
		for y := 0; y < p.Height(); y++ {
			row := p.Row(y)
			_ = row
		}
	}
}
