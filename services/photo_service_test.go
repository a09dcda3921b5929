package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_AddAppendsSortOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewPhotoService(f.db)

	first, err := svc.Add(f.ctx, f.owner.ID, PhotoInput{URL: "/uploads/businesses/a.jpg"})
	require.NoError(t, err)
	second, err := svc.Add(f.ctx, f.owner.ID, PhotoInput{URL: "/uploads/businesses/b.jpg", Caption: " Salon "})
	require.NoError(t, err)

	assert.Equal(t, first.SortOrder+1, second.SortOrder)
	assert.Equal(t, "Salon", second.Caption)

	photos, err := svc.List(f.ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, first.ID, photos[0].ID)
}

func TestPhotoService_ScopedToOwner(t *testing.T) {
	f := newFixture(t)
	svc := NewPhotoService(f.db)
	photo, err := svc.Add(f.ctx, f.owner.ID, PhotoInput{URL: "/uploads/businesses/a.jpg"})
	require.NoError(t, err)

	caption := "başkası"
	_, err = svc.Update(f.ctx, f.customer.ID, photo.ID, PhotoPatch{Caption: &caption})
	requireKind(t, err, KindNotFound)

	require.NoError(t, svc.Delete(f.ctx, f.owner.ID, photo.ID))
	assert.ErrorIs(t, svc.Delete(f.ctx, f.owner.ID, photo.ID), ErrPhotoNotFound)
}
