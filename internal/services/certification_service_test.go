package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCertification(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)

	request, err := svc.Submit(sitter.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CertificationPending, request.Status)
	assert.Equal(t, sitter.ID, request.SitterID)
	assert.False(t, request.SubmittedAt.IsZero())

	// Only one PENDING request per sitter at a time.
	_, err = svc.Submit(sitter.ID)
	assert.ErrorIs(t, err, ErrPendingCertification)
}

func TestSubmitAfterResolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)
	admin := createUser(t, db, models.RoleAdmin)

	request, err := svc.Submit(sitter.ID)
	require.NoError(t, err)

	_, err = svc.Reject(request.ID, admin.ID)
	require.NoError(t, err)

	// A resolved request frees the slot for a new submission.
	_, err = svc.Submit(sitter.ID)
	require.NoError(t, err)
}

func TestApproveCertification(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)
	admin := createUser(t, db, models.RoleAdmin)

	request, err := svc.Submit(sitter.ID)
	require.NoError(t, err)

	approved, err := svc.Approve(request.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CertificationApproved, approved.Status)
	require.NotNil(t, approved.AdminID)
	assert.Equal(t, admin.ID, *approved.AdminID)
}

func TestAdjudicateGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)
	admin := createUser(t, db, models.RoleAdmin)

	_, err := svc.Approve(uuid.New(), admin.ID)
	assert.ErrorIs(t, err, ErrCertificationNotFound)

	request, err := svc.Submit(sitter.ID)
	require.NoError(t, err)

	_, err = svc.Approve(request.ID, admin.ID)
	require.NoError(t, err)

	// Resolved requests cannot be adjudicated again, in either direction.
	_, err = svc.Approve(request.ID, admin.ID)
	assert.ErrorIs(t, err, ErrCertificationResolved)
	_, err = svc.Reject(request.ID, admin.ID)
	assert.ErrorIs(t, err, ErrCertificationResolved)

	var stored models.CertificationRequest
	require.NoError(t, db.First(&stored, "id = ?", request.ID).Error)
	assert.Equal(t, models.CertificationApproved, stored.Status)
}

func TestCertificationStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)
	admin := createUser(t, db, models.RoleAdmin)

	status, err := svc.Status(sitter.ID)
	require.NoError(t, err)
	assert.False(t, status.Certified)
	assert.Nil(t, status.ApprovedDate)

	request, err := svc.Submit(sitter.ID)
	require.NoError(t, err)

	// PENDING alone does not certify.
	status, err = svc.Status(sitter.ID)
	require.NoError(t, err)
	assert.False(t, status.Certified)

	_, err = svc.Approve(request.ID, admin.ID)
	require.NoError(t, err)

	status, err = svc.Status(sitter.ID)
	require.NoError(t, err)
	assert.True(t, status.Certified)
	require.NotNil(t, status.ApprovedDate)
}

func TestCertifiedSurvivesLaterRejection(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	sitter := createUser(t, db, models.RoleSitter)
	admin := createUser(t, db, models.RoleAdmin)

	first, err := svc.Submit(sitter.ID)
	require.NoError(t, err)
	_, err = svc.Approve(first.ID, admin.ID)
	require.NoError(t, err)

	second, err := svc.Submit(sitter.ID)
	require.NoError(t, err)
	_, err = svc.Reject(second.ID, admin.ID)
	require.NoError(t, err)

	// Rejecting a later request never revokes an earlier approval.
	status, err := svc.Status(sitter.ID)
	require.NoError(t, err)
	assert.True(t, status.Certified)
}

func TestPendingQueueOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	first := createUser(t, db, models.RoleSitter)
	second := createUser(t, db, models.RoleSitter)
	third := createUser(t, db, models.RoleSitter)

	// Seed directly so submission times are distinct and out of insert order.
	base := time.Now().Add(-time.Hour)
	for i, sitter := range []*models.User{third, first, second} {
		offset := map[int]time.Duration{0: 40 * time.Minute, 1: 10 * time.Minute, 2: 20 * time.Minute}[i]
		require.NoError(t, db.Create(&models.CertificationRequest{
			ID:          uuid.New(),
			SitterID:    sitter.ID,
			Status:      models.CertificationPending,
			SubmittedAt: base.Add(offset),
		}).Error)
	}

	queue, err := svc.PendingQueue()
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, first.ID, queue[0].SitterID, "oldest submission first")
	assert.Equal(t, second.ID, queue[1].SitterID)
	assert.Equal(t, third.ID, queue[2].SitterID)
}

func TestCertifiedSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(db)

	admin := createUser(t, db, models.RoleAdmin)
	certified := createUser(t, db, models.RoleSitter)
	pending := createUser(t, db, models.RoleSitter)
	plain := createUser(t, db, models.RoleSitter)

	request, err := svc.Submit(certified.ID)
	require.NoError(t, err)
	_, err = svc.Approve(request.ID, admin.ID)
	require.NoError(t, err)

	_, err = svc.Submit(pending.ID)
	require.NoError(t, err)

	set, err := svc.CertifiedSet([]uuid.UUID{certified.ID, pending.ID, plain.ID})
	require.NoError(t, err)
	assert.True(t, set[certified.ID])
	assert.False(t, set[pending.ID])
	assert.False(t, set[plain.ID])

	empty, err := svc.CertifiedSet(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
