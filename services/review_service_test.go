package services

import (
	"testing"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Create(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(f.db)

	review, err := svc.Create(f.ctx, f.customer.ID, f.business.ID, ReviewInput{Rating: 5, Comment: " Çok ilgililer "})
	require.NoError(t, err)
	assert.True(t, review.IsApproved)
	assert.Equal(t, "Çok ilgililer", review.Comment)

	_, err = svc.Create(f.ctx, f.customer.ID, f.business.ID, ReviewInput{Rating: 4})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)

	_, err = svc.Create(f.ctx, f.owner.ID, f.business.ID, ReviewInput{Rating: 5})
	assert.ErrorIs(t, err, ErrOwnBusinessReview)

	_, err = svc.Create(f.ctx, f.customer.ID, f.business.ID, ReviewInput{Rating: 6})
	requireKind(t, err, KindValidation)

	reviews, err := svc.ListApproved(f.ctx, f.business.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, ReviewAuthor{Name: f.customer.Name}, *reviews[0].User)

	var notifications []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", f.owner.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}

func TestReviewService_InactiveBusiness(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Model(&models.Business{}).Where("id = ?", f.business.ID).Update("is_active", false).Error)

	_, err := NewReviewService(f.db).Create(f.ctx, f.customer.ID, f.business.ID, ReviewInput{Rating: 3})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestReviewService_Approval(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(f.db)
	review, err := svc.Create(f.ctx, f.customer.ID, f.business.ID, ReviewInput{Rating: 2})
	require.NoError(t, err)

	hidden := false
	updated, err := svc.SetApproval(f.ctx, f.owner.ID, review.ID, ReviewApprovalInput{IsApproved: &hidden})
	require.NoError(t, err)
	assert.False(t, updated.IsApproved)

	reviews, err := svc.ListApproved(f.ctx, f.business.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	pending, err := svc.AdminList(f.ctx, queryparams.ListParams{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Meta.TotalItems)

	_, err = svc.SetApproval(f.ctx, f.owner.ID, review.ID, ReviewApprovalInput{})
	requireKind(t, err, KindValidation)
}
