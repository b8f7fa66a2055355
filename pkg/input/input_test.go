package input_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/input"
	"github.com/aretw0/espalier/pkg/ports"
)

// recorder captures the normalized event stream.
type recorder struct {
	ops []string
}

func (r *recorder) Start(_ context.Context, itemID string, _ domain.Coordinate) {
	r.ops = append(r.ops, "start:"+itemID)
}

func (r *recorder) Move(_ context.Context, overID string) {
	r.ops = append(r.ops, "move:"+overID)
}

func (r *recorder) End(_ context.Context, targetID string) error {
	r.ops = append(r.ops, "end:"+targetID)
	return nil
}

func (r *recorder) Cancel(_ context.Context) {
	r.ops = append(r.ops, "cancel")
}

func TestPointer_RelaysNativeTargets(t *testing.T) {
	rec := &recorder{}
	p := input.NewPointer(rec)
	ctx := context.Background()

	p.DragStart(ctx, "a", domain.Coordinate{X: 1})
	p.DragOver(ctx, "b")
	p.DragLeave(ctx)
	if err := p.Drop(ctx, "c"); err != nil {
		t.Fatal(err)
	}

	want := []string{"start:a", "move:b", "move:", "end:c"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops %v, want %v", rec.ops, want)
	}
}

func TestPointer_DragEndCancels(t *testing.T) {
	rec := &recorder{}
	p := input.NewPointer(rec)
	ctx := context.Background()

	p.DragStart(ctx, "a", domain.Coordinate{})
	p.DragEnd(ctx)

	want := []string{"start:a", "cancel"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops %v, want %v", rec.ops, want)
	}
}

// rowHits maps y-bands to item ids: item n owns y in [n*10, n*10+10).
func rowHits(ids ...string) ports.HitTester {
	return ports.HitTesterFunc(func(c domain.Coordinate) (string, bool) {
		row := int(c.Y) / 10
		if c.Y < 0 || row >= len(ids) {
			return "", false
		}
		return ids[row], true
	})
}

func TestTouch_HitTestsMoves(t *testing.T) {
	rec := &recorder{}
	tc := input.NewTouch(rec, rowHits("a", "b", "c"))
	ctx := context.Background()

	tc.TouchStart(ctx, "a", domain.Coordinate{Y: 5})
	tc.TouchMove(ctx, domain.Coordinate{Y: 15})  // over b
	tc.TouchMove(ctx, domain.Coordinate{Y: 999}) // over nothing
	if err := tc.TouchEnd(ctx, domain.Coordinate{Y: 25}); err != nil {
		t.Fatal(err)
	}

	want := []string{"start:a", "move:b", "move:", "end:c"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops %v, want %v", rec.ops, want)
	}
}

func TestTouch_ReleaseOverNothing(t *testing.T) {
	rec := &recorder{}
	tc := input.NewTouch(rec, rowHits("a"))
	ctx := context.Background()

	tc.TouchStart(ctx, "a", domain.Coordinate{})
	if err := tc.TouchEnd(ctx, domain.Coordinate{Y: -50}); err != nil {
		t.Fatal(err)
	}

	// Empty target: the engine settles it as a no-op drag.
	want := []string{"start:a", "end:"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops %v, want %v", rec.ops, want)
	}
}

func TestTouch_CancelForwards(t *testing.T) {
	rec := &recorder{}
	tc := input.NewTouch(rec, rowHits())
	ctx := context.Background()

	tc.TouchStart(ctx, "a", domain.Coordinate{})
	tc.TouchCancel(ctx)

	want := []string{"start:a", "cancel"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops %v, want %v", rec.ops, want)
	}
}
