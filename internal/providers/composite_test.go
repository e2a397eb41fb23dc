package providers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/providers"
)

// The single-key accessors on composite-key entities refuse immediately,
// before any query runs, so a nil db is fine here.
func TestWorkerSingleKeyAccessorsRefuse(t *testing.T) {
	c := qt.New(t)

	p := providers.NewWorkerProvider(nil)

	_, err := p.GetByID(uuid.New())
	c.Assert(err, qt.ErrorIs, providers.ErrCompositeKey)
	c.Assert(err.Error(), qt.Contains, "GetByRetailerAndEmployee")

	err = p.Delete(uuid.New())
	c.Assert(err, qt.ErrorIs, providers.ErrCompositeKey)
	c.Assert(err.Error(), qt.Contains, "DeleteByRetailerAndEmployee")
}

func TestRetailerInventorySingleKeyAccessorsRefuse(t *testing.T) {
	c := qt.New(t)

	p := providers.NewRetailerInventoryProvider(nil)

	_, err := p.GetByID(uuid.New())
	c.Assert(err, qt.ErrorIs, providers.ErrCompositeKey)
	c.Assert(err.Error(), qt.Contains, "GetByRetailerAndProduct")

	err = p.Delete(uuid.New())
	c.Assert(err, qt.ErrorIs, providers.ErrCompositeKey)
	c.Assert(err.Error(), qt.Contains, "DeleteByRetailerAndProduct")
}
