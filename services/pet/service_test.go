package pet

import (
	"testing"

	"pawhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[string]*models.Pet{}}
}

func (r *fakePetRepo) GetByID(id string) (*models.Pet, error) { return r.pets[id], nil }

func (r *fakePetRepo) GetByOwner(ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Create(p *models.Pet) error {
	r.pets[p.ID] = p
	return nil
}

func (r *fakePetRepo) Update(p *models.Pet) error {
	r.pets[p.ID] = p
	return nil
}

func (r *fakePetRepo) Delete(id string) error {
	delete(r.pets, id)
	return nil
}

func newService() (*DefaultPetService, *fakePetRepo) {
	repo := newFakePetRepo()
	return &DefaultPetService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestRegisterPet(t *testing.T) {
	svc, repo := newService()

	p, err := svc.Register("owner-1", PetInput{Name: "Rex", Species: "dog", Breed: "lab"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Contains(t, repo.pets, p.ID)
}

func TestRegisterPetRequiresNameAndSpecies(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register("owner-1", PetInput{Name: "Rex"})
	assert.Error(t, err)

	_, err = svc.Register("owner-1", PetInput{Species: "dog"})
	assert.Error(t, err)
}

func TestUpdatePetOwnershipEnforced(t *testing.T) {
	svc, _ := newService()

	p, err := svc.Register("owner-1", PetInput{Name: "Rex", Species: "dog"})
	require.NoError(t, err)

	_, err = svc.Update("owner-2", p.ID, PetInput{Name: "Stolen"})
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update("owner-1", p.ID, PetInput{Name: "Max"})
	require.NoError(t, err)
	assert.Equal(t, "Max", updated.Name)
	assert.Equal(t, "dog", updated.Species, "unset fields keep their value")
}

func TestDeletePetOwnershipEnforced(t *testing.T) {
	svc, repo := newService()

	p, err := svc.Register("owner-1", PetInput{Name: "Rex", Species: "dog"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete("owner-2", p.ID), ErrNotOwner)
	require.NoError(t, svc.Delete("owner-1", p.ID))
	assert.NotContains(t, repo.pets, p.ID)
}

func TestSetPhotoURL(t *testing.T) {
	svc, _ := newService()

	p, err := svc.Register("owner-1", PetInput{Name: "Rex", Species: "dog"})
	require.NoError(t, err)

	updated, err := svc.SetPhotoURL("owner-1", p.ID, "https://cdn.example.com/rex.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/rex.jpg", updated.PhotoURL)
}
