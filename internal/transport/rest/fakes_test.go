package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/service/auth"
	"github.com/SillyFizy/grow/internal/service/catalog"
	"github.com/SillyFizy/grow/internal/service/location"
	"github.com/SillyFizy/grow/internal/service/submission"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

type fakeAuth struct {
	register func(context.Context, auth.RegisterInput) (*auth.AuthResult, error)
	login    func(context.Context, auth.LoginInput) (*auth.AuthResult, error)
	refresh  func(context.Context, auth.RefreshInput) (*auth.AuthResult, error)
	logout   func(context.Context) error
	me       func(context.Context) (*domain.User, error)
}

func (f *fakeAuth) Register(ctx context.Context, in auth.RegisterInput) (*auth.AuthResult, error) {
	return f.register(ctx, in)
}
func (f *fakeAuth) Login(ctx context.Context, in auth.LoginInput) (*auth.AuthResult, error) {
	return f.login(ctx, in)
}
func (f *fakeAuth) Refresh(ctx context.Context, in auth.RefreshInput) (*auth.AuthResult, error) {
	return f.refresh(ctx, in)
}
func (f *fakeAuth) Logout(ctx context.Context) error { return f.logout(ctx) }
func (f *fakeAuth) Me(ctx context.Context) (*domain.User, error) { return f.me(ctx) }

type fakeSubmissions struct {
	create func(context.Context, submission.CreateInput, io.Reader) (*domain.PlantSubmission, error)
	mine   func(context.Context) ([]domain.PlantSubmission, error)
}

func (f *fakeSubmissions) Create(ctx context.Context, in submission.CreateInput, image io.Reader) (*domain.PlantSubmission, error) {
	return f.create(ctx, in, image)
}
func (f *fakeSubmissions) Mine(ctx context.Context) ([]domain.PlantSubmission, error) {
	return f.mine(ctx)
}

type fakeQueue struct {
	list func(context.Context, submission.ListInput) ([]domain.PlantSubmission, int, error)
	get  func(context.Context, int64) (*domain.PlantSubmission, error)
}

func (f *fakeQueue) List(ctx context.Context, in submission.ListInput) ([]domain.PlantSubmission, int, error) {
	return f.list(ctx, in)
}
func (f *fakeQueue) Get(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	return f.get(ctx, id)
}

type fakePromoter struct {
	promote     func(context.Context, int64) (*domain.PromotionResult, error)
	promoteMany func(context.Context, []int64) (*domain.BatchResult, error)
	reject      func(context.Context, []int64) (int, error)
}

func (f *fakePromoter) Promote(ctx context.Context, id int64) (*domain.PromotionResult, error) {
	return f.promote(ctx, id)
}
func (f *fakePromoter) PromoteMany(ctx context.Context, ids []int64) (*domain.BatchResult, error) {
	return f.promoteMany(ctx, ids)
}
func (f *fakePromoter) Reject(ctx context.Context, ids []int64) (int, error) {
	return f.reject(ctx, ids)
}

type fakeCatalog struct {
	listFamilies   func(context.Context, catalog.FamilyListInput) ([]domain.PlantFamily, error)
	getFamily      func(context.Context, int64) (*domain.PlantFamily, error)
	listPlants     func(context.Context, catalog.PlantListInput) ([]domain.Plant, int, error)
	getPlant       func(context.Context, int64) (*domain.PlantDetail, error)
	plantsByFamily func(context.Context, int64) ([]domain.Plant, error)
	createFamily   func(context.Context, catalog.CreateFamilyInput) (*domain.PlantFamily, error)
	deleteFamily   func(context.Context, int64) error
	createPlant    func(context.Context, catalog.CreatePlantInput) (*domain.PlantDetail, error)
	deletePlant    func(context.Context, int64) error
}

func (f *fakeCatalog) ListFamilies(ctx context.Context, in catalog.FamilyListInput) ([]domain.PlantFamily, error) {
	return f.listFamilies(ctx, in)
}
func (f *fakeCatalog) GetFamily(ctx context.Context, id int64) (*domain.PlantFamily, error) {
	return f.getFamily(ctx, id)
}
func (f *fakeCatalog) ListPlants(ctx context.Context, in catalog.PlantListInput) ([]domain.Plant, int, error) {
	return f.listPlants(ctx, in)
}
func (f *fakeCatalog) GetPlant(ctx context.Context, id int64) (*domain.PlantDetail, error) {
	return f.getPlant(ctx, id)
}
func (f *fakeCatalog) PlantsByFamily(ctx context.Context, id int64) ([]domain.Plant, error) {
	return f.plantsByFamily(ctx, id)
}
func (f *fakeCatalog) CreateFamily(ctx context.Context, in catalog.CreateFamilyInput) (*domain.PlantFamily, error) {
	return f.createFamily(ctx, in)
}
func (f *fakeCatalog) DeleteFamily(ctx context.Context, id int64) error { return f.deleteFamily(ctx, id) }
func (f *fakeCatalog) CreatePlant(ctx context.Context, in catalog.CreatePlantInput) (*domain.PlantDetail, error) {
	return f.createPlant(ctx, in)
}
func (f *fakeCatalog) DeletePlant(ctx context.Context, id int64) error { return f.deletePlant(ctx, id) }

type fakeLocations struct {
	create     func(context.Context, location.CreateInput) (*domain.PlantLocation, error)
	list       func(context.Context, location.ListInput) ([]domain.PlantLocation, error)
	get        func(context.Context, int64) (*domain.PlantLocation, error)
	update     func(context.Context, int64, location.UpdateInput) (*domain.PlantLocation, error)
	delete     func(context.Context, int64) error
	plantStats func(context.Context, int64) (*domain.PlantLocationStats, error)
	userStats  func(context.Context) (*domain.UserLocationStats, error)
}

func (f *fakeLocations) Create(ctx context.Context, in location.CreateInput) (*domain.PlantLocation, error) {
	return f.create(ctx, in)
}
func (f *fakeLocations) List(ctx context.Context, in location.ListInput) ([]domain.PlantLocation, error) {
	return f.list(ctx, in)
}
func (f *fakeLocations) Get(ctx context.Context, id int64) (*domain.PlantLocation, error) {
	return f.get(ctx, id)
}
func (f *fakeLocations) Update(ctx context.Context, id int64, in location.UpdateInput) (*domain.PlantLocation, error) {
	return f.update(ctx, id, in)
}
func (f *fakeLocations) Delete(ctx context.Context, id int64) error { return f.delete(ctx, id) }
func (f *fakeLocations) PlantStats(ctx context.Context, id int64) (*domain.PlantLocationStats, error) {
	return f.plantStats(ctx, id)
}
func (f *fakeLocations) UserStats(ctx context.Context) (*domain.UserLocationStats, error) {
	return f.userStats(ctx)
}

func stringsReader(s string) io.Reader { return bytes.NewBufferString(s) }
