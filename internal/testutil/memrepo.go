// Package testutil ofrece repositorios en memoria con la misma semántica que los de
// PostgreSQL (unicidad de email y de (user_id, store_id), orden de listados, promedio 0).
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.AccountRepository = (*AccountRepo)(nil)
	_ repository.RatingRepository  = (*RatingRepo)(nil)
)

// MemoryDB estado compartido entre AccountRepo y RatingRepo.
// Si Err no es nil, todas las operaciones lo devuelven.
type MemoryDB struct {
	mu       sync.Mutex
	seq      int
	accounts []*storedAccount
	ratings  []*entity.Rating
	Err      error
}

type storedAccount struct {
	entity.Account
	seq int
}

// NewMemoryDB crea una base vacía.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{}
}

// Accounts devuelve el repositorio de cuentas.
func (db *MemoryDB) Accounts() *AccountRepo { return &AccountRepo{db: db} }

// Ratings devuelve el repositorio de calificaciones.
func (db *MemoryDB) Ratings() *RatingRepo { return &RatingRepo{db: db} }

func (db *MemoryDB) accountByID(id string) *storedAccount {
	for _, a := range db.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (db *MemoryDB) storeAverage(storeID string) decimal.Decimal {
	var sum, n int64
	for _, r := range db.ratings {
		if r.StoreID == storeID {
			sum += int64(r.Value)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(n))
}

func (db *MemoryDB) storesByName() []*storedAccount {
	var stores []*storedAccount
	for _, a := range db.accounts {
		if a.Role == entity.RoleStore {
			stores = append(stores, a)
		}
	}
	sort.SliceStable(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })
	return stores
}

// AccountRepo implementación en memoria de repository.AccountRepository.
type AccountRepo struct{ db *MemoryDB }

func (r *AccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	for _, a := range r.db.accounts {
		if a.Email == account.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.db.seq++
	cp := *account
	cp.ID = strings.Clone(cp.ID)
	cp.Name = strings.Clone(cp.Name)
	cp.Email = strings.Clone(cp.Email)
	cp.PasswordHash = strings.Clone(cp.PasswordHash)
	cp.Address = strings.Clone(cp.Address)
	r.db.accounts = append(r.db.accounts, &storedAccount{Account: cp, seq: r.db.seq})
	return nil
}

func (r *AccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	if a := r.db.accountByID(id); a != nil {
		cp := a.Account
		return &cp, nil
	}
	return nil, nil
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	for _, a := range r.db.accounts {
		if a.Email == email {
			cp := a.Account
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	sorted := make([]*storedAccount, len(r.db.accounts))
	copy(sorted, r.db.accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].seq > sorted[j].seq
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	list := make([]*entity.Account, 0, len(sorted))
	for _, a := range sorted {
		cp := a.Account
		list = append(list, &cp)
	}
	return list, nil
}

func (r *AccountRepo) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return 0, r.db.Err
	}
	var n int64
	for _, a := range r.db.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *AccountRepo) UpdatePassword(_ context.Context, id, passwordHash string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return false, r.db.Err
	}
	a := r.db.accountByID(id)
	if a == nil {
		return false, nil
	}
	a.PasswordHash = passwordHash
	return true, nil
}

// Delete elimina una cuenta; sólo existe para simular cuentas desaparecidas en tests.
func (r *AccountRepo) Delete(id string) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, a := range r.db.accounts {
		if a.ID == id {
			r.db.accounts = append(r.db.accounts[:i], r.db.accounts[i+1:]...)
			return
		}
	}
}

// RatingRepo implementación en memoria de repository.RatingRepository.
type RatingRepo struct{ db *MemoryDB }

func (r *RatingRepo) Create(_ context.Context, rating *entity.Rating) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	for _, existing := range r.db.ratings {
		if existing.UserID == rating.UserID && existing.StoreID == rating.StoreID {
			return domain.ErrRatingAlreadyExists
		}
	}
	// Las claves pueden venir de buffers reutilizables (parámetros de ruta); no se retienen.
	cp := *rating
	cp.ID = strings.Clone(cp.ID)
	cp.UserID = strings.Clone(cp.UserID)
	cp.StoreID = strings.Clone(cp.StoreID)
	r.db.ratings = append(r.db.ratings, &cp)
	return nil
}

func (r *RatingRepo) Exists(_ context.Context, userID, storeID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return false, r.db.Err
	}
	for _, existing := range r.db.ratings {
		if existing.UserID == userID && existing.StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *RatingRepo) UpdateValue(_ context.Context, userID, storeID string, value int, updatedAt time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return false, r.db.Err
	}
	for _, existing := range r.db.ratings {
		if existing.UserID == userID && existing.StoreID == storeID {
			existing.Value = value
			existing.UpdatedAt = updatedAt
			return true, nil
		}
	}
	return false, nil
}

func (r *RatingRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return 0, r.db.Err
	}
	return int64(len(r.db.ratings)), nil
}

func (r *RatingRepo) ListStoreSummaries(_ context.Context) ([]repository.StoreRatingSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	var out []repository.StoreRatingSummary
	for _, s := range r.db.storesByName() {
		avg := r.db.storeAverage(s.ID)
		out = append(out, repository.StoreRatingSummary{
			ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address, Average: avg,
		})
	}
	return out, nil
}

func (r *RatingRepo) ListStoresForUser(_ context.Context, userID string) ([]repository.UserStoreView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	var out []repository.UserStoreView
	for _, s := range r.db.storesByName() {
		avg := r.db.storeAverage(s.ID)
		view := repository.UserStoreView{ID: s.ID, Name: s.Name, Address: s.Address, Average: avg}
		for _, rt := range r.db.ratings {
			if rt.StoreID == s.ID && rt.UserID == userID {
				v := rt.Value
				view.UserRating = &v
			}
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *RatingRepo) ListByStore(_ context.Context, storeID string) ([]repository.RatingWithAuthor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	var out []repository.RatingWithAuthor
	for i := len(r.db.ratings) - 1; i >= 0; i-- {
		rt := r.db.ratings[i]
		if rt.StoreID != storeID {
			continue
		}
		author := r.db.accountByID(rt.UserID)
		if author == nil {
			continue
		}
		out = append(out, repository.RatingWithAuthor{
			ID: rt.ID, Value: rt.Value, CreatedAt: rt.CreatedAt,
			AuthorName: author.Name, AuthorEmail: author.Email,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
