package service

import (
	"context"
	"net/http"
	destinationserrors "staybook/internal/destinations/errors"
	"staybook/internal/destinations/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDestinationRepository struct {
	created  *model.Destination
	replaced *model.Destination
	stored   map[string]*model.Destination
}

func (m *mockDestinationRepository) Create(ctx context.Context, d *model.Destination) error {
	d.ID = "d1"
	m.created = d
	return nil
}

func (m *mockDestinationRepository) FindByID(ctx context.Context, id string) (*model.Destination, error) {
	if d, ok := m.stored[id]; ok {
		return d, nil
	}
	return nil, destinationserrors.ErrNotFound
}

func (m *mockDestinationRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Destination, error) {
	out := []*model.Destination{}
	for _, d := range m.stored {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDestinationRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.stored)), nil
}

func (m *mockDestinationRepository) Replace(ctx context.Context, id string, d *model.Destination) error {
	if _, ok := m.stored[id]; !ok {
		return destinationserrors.ErrNotFound
	}
	m.replaced = d
	m.stored[id] = d
	return nil
}

func (m *mockDestinationRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.stored[id]; !ok {
		return destinationserrors.ErrNotFound
	}
	delete(m.stored, id)
	return nil
}

func newTestService(repo *mockDestinationRepository) DestinationService {
	log := logger.Discard()
	return NewDestinationService(repo, validator.NewDestinationValidator(log), &config.Config{Log: log})
}

func TestCreate(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	d := &model.Destination{
		Name:               " Swiss   Alps ",
		Country:            "Switzerland",
		Description:        "Peaks and lakes",
		Image:              "https://images.example.com/alps.jpg",
		PopularAttractions: model.Attractions{"Matterhorn", " matterhorn ", "Jungfraujoch"},
	}
	require.NoError(t, svc.Create(context.Background(), d))
	assert.Equal(t, "Swiss Alps", repo.created.Name)
	assert.Equal(t, model.Attractions{"Matterhorn", "Jungfraujoch"}, repo.created.PopularAttractions)
}

func TestCreate_MissingFields(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	err := svc.Create(context.Background(), &model.Destination{Name: "Bali"})
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, "Missing required fields: country, description, image", appErr.Message)
	assert.Nil(t, repo.created)
}

func TestReplaceAndDelete(t *testing.T) {
	repo := &mockDestinationRepository{stored: map[string]*model.Destination{
		"d1": {ID: "d1", Name: "Bali"},
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	updated, err := svc.Replace(ctx, "d1", &model.Destination{
		Name:        "Bali",
		Country:     "Indonesia",
		Description: "Temples and beaches",
		Image:       "https://images.example.com/bali.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Indonesia", updated.Country)

	_, err = svc.Replace(ctx, "nope", &model.Destination{
		Name: "Lisbon", Country: "Portugal", Description: "Hills and trams", Image: "https://images.example.com/lisbon.jpg",
	})
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
	assert.Equal(t, "Destination not found", appErr.Message)

	require.NoError(t, svc.Delete(ctx, "d1"))
	assert.Equal(t, http.StatusNotFound, apperrors.AsAppError(svc.Delete(ctx, "d1")).StatusCode())
}

func TestGetAll(t *testing.T) {
	repo := &mockDestinationRepository{stored: map[string]*model.Destination{
		"d1": {ID: "d1"}, "d2": {ID: "d2"},
	}}
	list, total, err := newTestService(repo).GetAll(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.EqualValues(t, 2, total)
}
