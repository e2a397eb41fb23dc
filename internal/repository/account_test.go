package repository_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"

	"retail_admin/internal/events"
	"retail_admin/internal/models"
	"retail_admin/internal/providers"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type fakeAccountProvider struct {
	accounts map[uuid.UUID]models.RetailerAccount
}

func newFakeAccountProvider() *fakeAccountProvider {
	return &fakeAccountProvider{accounts: map[uuid.UUID]models.RetailerAccount{}}
}

func (f *fakeAccountProvider) add(retailerID uuid.UUID, coins int) models.RetailerAccount {
	account := models.RetailerAccount{ID: uuid.New(), RetailerID: retailerID, Coins: coins}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountProvider) GetAll() ([]models.RetailerAccount, error) {
	out := make([]models.RetailerAccount, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccountProvider) GetByID(id uuid.UUID) (*models.RetailerAccount, error) {
	if a, ok := f.accounts[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAccountProvider) GetByRetailer(retailerID uuid.UUID) (*models.RetailerAccount, error) {
	for _, a := range f.accounts {
		if a.RetailerID == retailerID {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountProvider) Create(input schemas.CreateRetailerAccount) (*models.RetailerAccount, error) {
	account := f.add(input.RetailerID, input.Coins)
	return &account, nil
}

func (f *fakeAccountProvider) Update(input schemas.UpdateRetailerAccount) (*models.RetailerAccount, error) {
	a, ok := f.accounts[input.ID]
	if !ok {
		return nil, nil
	}
	a.Coins = input.Coins
	f.accounts[input.ID] = a
	return &a, nil
}

func (f *fakeAccountProvider) Delete(id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountProvider) AddCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, _ := f.GetByRetailer(retailerID)
	if account == nil {
		return nil, providers.ErrAccountNotFound
	}
	return f.Update(schemas.UpdateRetailerAccount{ID: account.ID, Coins: account.Coins + coins})
}

func (f *fakeAccountProvider) DeductCoins(retailerID uuid.UUID, coins int) (*models.RetailerAccount, error) {
	account, _ := f.GetByRetailer(retailerID)
	if account == nil {
		return nil, providers.ErrAccountNotFound
	}
	if account.Coins < coins {
		return nil, providers.ErrInsufficientCoins
	}
	return f.Update(schemas.UpdateRetailerAccount{ID: account.ID, Coins: account.Coins - coins})
}

func newAccountFixture() (*fakeAccountProvider, repository.RetailerAccountRepository, *eventRecorder) {
	provider := newFakeAccountProvider()
	bus := events.NewBus(events.DbChannel, nil)
	rec := recordEvents(bus)
	return provider, repository.NewRetailerAccountRepository(provider, bus), rec
}

func TestDeductCoins(t *testing.T) {
	c := qt.New(t)

	provider, repo, rec := newAccountFixture()
	retailerID := uuid.New()
	provider.add(retailerID, 100)

	account, err := repo.DeductCoins(retailerID, 30)
	c.Assert(err, qt.IsNil)
	c.Assert(account.Coins, qt.Equals, 70)
	c.Assert(rec.topics(), qt.DeepEquals, []string{"retailer_account.updated"})
}

// A failed deduction must leave the balance alone and publish nothing.
func TestDeductCoinsInsufficientBalance(t *testing.T) {
	c := qt.New(t)

	provider, repo, rec := newAccountFixture()
	retailerID := uuid.New()
	stored := provider.add(retailerID, 20)

	_, err := repo.DeductCoins(retailerID, 50)
	c.Assert(err, qt.ErrorIs, providers.ErrInsufficientCoins)
	c.Assert(provider.accounts[stored.ID].Coins, qt.Equals, 20)
	c.Assert(rec.events, qt.HasLen, 0)
}

func TestAddCoinsUnknownAccount(t *testing.T) {
	c := qt.New(t)

	_, repo, rec := newAccountFixture()

	_, err := repo.AddCoins(uuid.New(), 10)
	c.Assert(err, qt.ErrorIs, providers.ErrAccountNotFound)
	c.Assert(rec.events, qt.HasLen, 0)
}

func TestAddCoins(t *testing.T) {
	c := qt.New(t)

	provider, repo, rec := newAccountFixture()
	retailerID := uuid.New()
	provider.add(retailerID, 5)

	account, err := repo.AddCoins(retailerID, 15)
	c.Assert(err, qt.IsNil)
	c.Assert(account.Coins, qt.Equals, 20)
	c.Assert(rec.topics(), qt.DeepEquals, []string{"retailer_account.updated"})
}
