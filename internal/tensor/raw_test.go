package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	r, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if !r.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", r.Shape())
	}
	if r.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", r.NumElements())
	}
	if r.ByteSize() != 24 {
		t.Errorf("ByteSize = %d, want 24", r.ByteSize())
	}
	if r.Device() != CPU {
		t.Errorf("device = %v, want CPU", r.Device())
	}

	// Zero-initialized
	for i, v := range r.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw accepted a zero dimension")
	}
	if _, err := NewRaw(Shape{}, Float32, CPU); err == nil {
		t.Error("NewRaw accepted the unknown shape placeholder")
	}
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	r, err := FromSlice(data, Shape{2, 3}, CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	got := r.AsFloat32()
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], data[i])
		}
	}

	// Copy, not a view
	data[0] = 99
	if got[0] == 99 {
		t.Error("FromSlice aliases the caller's slice")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}, CPU); err == nil {
		t.Error("FromSlice accepted mismatched length")
	}
}

func TestAsFloat32WrongDType(t *testing.T) {
	r, err := NewRaw(Shape{2}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on float64 tensor did not panic")
		}
	}()
	r.AsFloat32()
}

func TestCloneSharesStorage(t *testing.T) {
	r, err := FromSlice([]float32{1, 2, 3}, Shape{3}, CPU)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	alias := r.Clone()
	if !r.SharesStorage(alias) {
		t.Error("clone does not share storage")
	}

	alias.AsFloat32()[1] = 42
	if r.AsFloat32()[1] != 42 {
		t.Error("write through alias not visible in original")
	}

	other, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, CPU)
	if r.SharesStorage(other) {
		t.Error("independent tensors report shared storage")
	}
}

func TestFlatTo2DView(t *testing.T) {
	r, err := NewRaw(Shape{2, 3, 4}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	rows, cols := r.FlatTo2D()
	if rows != 6 || cols != 4 {
		t.Errorf("FlatTo2D = (%d, %d), want (6, 4)", rows, cols)
	}
}
