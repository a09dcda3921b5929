package services

import (
	"testing"

	"tiklabakim.com/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_DistrictSlugScopedToCity(t *testing.T) {
	f := newFixture(t)
	svc := NewLocationService(f.db)

	ankara, err := svc.CreateCity(f.ctx, f.owner.ID, CityInput{Name: "Ankara", PlateCode: 6})
	require.NoError(t, err)
	assert.Equal(t, "ankara", ankara.Slug)

	// İstanbul'da "kadikoy" zaten var; başka şehirde aynı slug serbesttir.
	other, err := svc.CreateDistrict(f.ctx, f.owner.ID, DistrictInput{CityID: ankara.ID, Name: "Kadıköy"})
	require.NoError(t, err)
	assert.Equal(t, "kadikoy", other.Slug)

	_, err = svc.CreateDistrict(f.ctx, f.owner.ID, DistrictInput{CityID: f.city.ID, Name: "Kadıköy"})
	requireKind(t, err, KindConflict)
	assert.ErrorIs(t, err, ErrDistrictSlugTaken)
}

func TestLocationService_CreateDistrictUnknownCity(t *testing.T) {
	f := newFixture(t)
	_, err := NewLocationService(f.db).CreateDistrict(f.ctx, f.owner.ID, DistrictInput{CityID: 404, Name: "Yok"})
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestLocationService_NeighborhoodSlugScopedToDistrict(t *testing.T) {
	f := newFixture(t)
	svc := NewLocationService(f.db)

	moda, err := svc.CreateNeighborhood(f.ctx, f.owner.ID, NeighborhoodInput{DistrictID: f.district.ID, Name: "Moda"})
	require.NoError(t, err)
	assert.Equal(t, "moda", moda.Slug)

	_, err = svc.CreateNeighborhood(f.ctx, f.owner.ID, NeighborhoodInput{DistrictID: f.district.ID, Name: "Moda"})
	assert.ErrorIs(t, err, ErrNeighborhoodSlugTaken)

	list, err := svc.ListNeighborhoods(f.ctx, f.district.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Moda", list[0].Name)
}

func TestLocationService_ListDistrictsByCitySlug(t *testing.T) {
	f := newFixture(t)
	svc := NewLocationService(f.db)

	districts, err := svc.ListDistrictsByCitySlug(f.ctx, "istanbul")
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, "kadikoy", districts[0].Slug)

	_, err = svc.ListDistrictsByCitySlug(f.ctx, "atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestLocationService_UpdateCity(t *testing.T) {
	f := newFixture(t)
	svc := NewLocationService(f.db)
	name, slug := "İstanbul Anadolu", "istanbul-anadolu"

	city, err := svc.UpdateCity(f.ctx, f.owner.ID, f.city.ID, LocationPatch{Name: &name, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, name, city.Name)
	assert.Equal(t, slug, city.Slug)

	_, err = svc.UpdateCity(f.ctx, f.owner.ID, 999, LocationPatch{Name: &name})
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestLocationService_DeleteCityInUse(t *testing.T) {
	f := newFixture(t)
	err := NewLocationService(f.db).DeleteCity(f.ctx, f.owner.ID, f.city.ID)
	assert.ErrorIs(t, err, ErrInUse)

	var count int64
	require.NoError(t, f.db.Model(&models.City{}).Where("id = ?", f.city.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLocationService_DeleteUnusedCity(t *testing.T) {
	f := newFixture(t)
	svc := NewLocationService(f.db)
	city, err := svc.CreateCity(f.ctx, f.owner.ID, CityInput{Name: "İzmir", PlateCode: 35})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCity(f.ctx, f.owner.ID, city.ID))
	assert.ErrorIs(t, svc.DeleteCity(f.ctx, f.owner.ID, city.ID), ErrCityNotFound)
}
