package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

func (h *harness) schoolKey(admin, schoolID int64, start, end int64) string {
	h.t.Helper()
	out, err := h.schools.NewSchoolKey(context.Background(), user(admin), dto.SchoolKeyNewRequest{
		SchoolID:  schoolID,
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(h.t, err)
	return out.SchoolKey.SchoolKeyKey
}

func (h *harness) redeemSchool(userID int64, token string) (*dto.Adminship, error) {
	return h.schools.NewAdminshipKey(context.Background(), user(userID), dto.AdminshipNewKeyRequest{SchoolKeyKey: token})
}

func TestNewSchoolGrantsCreatorAdminship(t *testing.T) {
	h := newHarness(t)
	out, err := h.schools.NewSchool(context.Background(), user(1), dto.SchoolNewRequest{Name: "North High", Description: "lakeside"})
	require.NoError(t, err)

	assert.Equal(t, "North High", out.Name)
	assert.True(t, out.Active)
	assert.Equal(t, h.millis(), out.CreationTime)
	require.Len(t, h.mem.adminships, 1)
	assert.Equal(t, models.AdminshipKindAdmin, h.mem.adminships[0].AdminshipKind)
	assert.Nil(t, h.mem.adminships[0].SchoolKeyKey)
	assert.Equal(t, []string{events.SchoolCreated, events.AdminshipCreated}, h.dispatched.names())
}

func TestNewSchoolRejectsInvalidPayload(t *testing.T) {
	h := newHarness(t)
	_, err := h.schools.NewSchool(context.Background(), user(1), dto.SchoolNewRequest{})
	requireCode(t, err, appErrors.ErrValidation)
	assert.Empty(t, h.tx.opts)
}

func TestNewSchoolEnforcesSubscription(t *testing.T) {
	h := newHarness(t)
	svc := NewSchoolService(h.deps, true)
	ctx := context.Background()
	req := dto.SchoolNewRequest{Name: "Annex"}

	_, err := svc.NewSchool(ctx, user(1), req)
	requireCode(t, err, appErrors.ErrSubscriptionNonexistent)

	sub, err := svc.NewSubscription(ctx, user(1), dto.SubscriptionNewRequest{SubscriptionKind: models.SubscriptionKindValid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.MaxUses)

	_, err = svc.NewSchool(ctx, user(1), req)
	require.NoError(t, err)
	_, err = svc.NewSchool(ctx, user(1), req)
	requireCode(t, err, appErrors.ErrSubscriptionLimited)

	_, err = svc.NewSubscription(ctx, user(1), dto.SubscriptionNewRequest{SubscriptionKind: models.SubscriptionKindCancel})
	require.NoError(t, err)
	_, err = svc.NewSchool(ctx, user(1), req)
	requireCode(t, err, appErrors.ErrSubscriptionNonexistent)
	assert.Len(t, h.mem.schools, 1)
}

func TestSchoolKeyIsSingleUse(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)
	token := h.schoolKey(1, schoolID, h.millis()-1, h.millis()+1000)

	granted, err := h.redeemSchool(3, token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), granted.UserID)
	require.NotNil(t, granted.SchoolKey)
	assert.Equal(t, token, granted.SchoolKey.SchoolKeyKey)

	_, err = h.redeemSchool(4, token)
	requireCode(t, err, appErrors.ErrSchoolKeyUsed)
	assert.Equal(t, []string{"school:ok", "school:" + appErrors.ErrSchoolKeyUsed.Code}, h.redeemed.results)
}

func TestSchoolKeyValidityWindowIsInclusive(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)
	start := h.millis() + 1000
	end := start + 1000
	token := h.schoolKey(1, schoolID, start, end)
	other := h.schoolKey(1, schoolID, start, end)

	_, err := h.redeemSchool(3, token)
	requireCode(t, err, appErrors.ErrSchoolKeyExpired)

	h.advance(time.Second)
	_, err = h.redeemSchool(3, token)
	require.NoError(t, err)

	h.advance(time.Second)
	_, err = h.redeemSchool(4, other)
	require.NoError(t, err, "end time is still valid")

	late := h.schoolKey(1, schoolID, h.millis()-10, h.millis())
	h.advance(time.Millisecond)
	_, err = h.redeemSchool(5, late)
	requireCode(t, err, appErrors.ErrSchoolKeyExpired)
}

func TestSchoolKeyRedeemChecksUseBeforeArchive(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID := h.newSchool(1)
	used := h.schoolKey(1, schoolID, h.millis()-1, h.millis()+1000)
	fresh := h.schoolKey(1, schoolID, h.millis()-1, h.millis()+1000)
	_, err := h.redeemSchool(3, used)
	require.NoError(t, err)

	_, err = h.schools.NewSchoolKeyData(ctx, user(1), dto.SchoolKeyDataNewRequest{SchoolKeyKey: fresh, Active: false})
	require.NoError(t, err)
	_, err = h.redeemSchool(4, fresh)
	requireCode(t, err, appErrors.ErrSchoolKeyArchived)

	_, err = h.schools.NewSchoolData(ctx, user(1), dto.SchoolDataNewRequest{SchoolID: schoolID, Name: "North High", Active: false})
	require.NoError(t, err)
	_, err = h.redeemSchool(4, used)
	requireCode(t, err, appErrors.ErrSchoolKeyUsed)
	_, err = h.redeemSchool(4, fresh)
	requireCode(t, err, appErrors.ErrSchoolArchived)

	_, err = h.redeemSchool(4, "no-such-key")
	requireCode(t, err, appErrors.ErrSchoolKeyNonexistent)
}

func TestNewSchoolKeyRules(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID := h.newSchool(1)

	_, err := h.schools.NewSchoolKey(ctx, user(1), dto.SchoolKeyNewRequest{SchoolID: schoolID, StartTime: 20, EndTime: 10})
	requireCode(t, err, appErrors.ErrNegativeDuration)

	_, err = h.schools.NewSchoolKey(ctx, user(2), dto.SchoolKeyNewRequest{SchoolID: schoolID, StartTime: 10, EndTime: 20})
	requireCode(t, err, appErrors.ErrForbidden)

	_, err = h.schools.NewSchoolKey(ctx, user(1), dto.SchoolKeyNewRequest{SchoolID: 999, StartTime: 10, EndTime: 20})
	requireCode(t, err, appErrors.ErrSchoolNonexistent)
	assert.Empty(t, h.mem.schoolKeys)
}

func TestNewSchoolDataRequiresAdmin(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)

	_, err := h.schools.NewSchoolData(context.Background(), user(2), dto.SchoolDataNewRequest{SchoolID: schoolID, Name: "Renamed"})
	requireCode(t, err, appErrors.ErrForbidden)

	out, err := h.schools.NewSchoolData(context.Background(), user(1), dto.SchoolDataNewRequest{SchoolID: schoolID, Name: "Renamed", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Name)
	assert.Len(t, h.mem.schoolData, 2, "versions are appended, never replaced")
}

func TestAdminshipCancelKeepsOneAdmin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID := h.newSchool(1)

	_, err := h.schools.NewAdminshipCancel(ctx, user(1), dto.AdminshipNewCancelRequest{UserID: 1, SchoolID: schoolID})
	requireCode(t, err, appErrors.ErrAdminshipCannotLeaveEmpty)

	token := h.schoolKey(1, schoolID, h.millis()-1, h.millis()+1000)
	_, err = h.redeemSchool(3, token)
	require.NoError(t, err)

	out, err := h.schools.NewAdminshipCancel(ctx, user(1), dto.AdminshipNewCancelRequest{UserID: 3, SchoolID: schoolID})
	require.NoError(t, err)
	assert.Equal(t, models.AdminshipKindCancel, out.AdminshipKind)
	assert.Len(t, h.mem.adminships, 3)

	_, err = h.schools.NewAdminshipCancel(ctx, user(3), dto.AdminshipNewCancelRequest{UserID: 1, SchoolID: schoolID})
	requireCode(t, err, appErrors.ErrForbidden)
	assert.Contains(t, h.dispatched.names(), events.AdminshipCancelled)
}

func TestAdminshipCancelLooksUpUser(t *testing.T) {
	h := newHarness(t)
	h.deps.Users = stubUsers{1: true}
	svc := NewSchoolService(h.deps, false)
	schoolID := h.newSchool(1)

	_, err := svc.NewAdminshipCancel(context.Background(), user(1), dto.AdminshipNewCancelRequest{UserID: 42, SchoolID: schoolID})
	requireCode(t, err, appErrors.ErrUserNonexistent)
}

func TestSchoolViews(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID := h.newSchool(1)
	h.schoolKey(1, schoolID, 0, h.millis()+1000)
	_, err := h.schools.NewSubscription(ctx, user(1), dto.SubscriptionNewRequest{SubscriptionKind: models.SubscriptionKindValid})
	require.NoError(t, err)

	schools, err := h.schools.Schools(ctx, user(9), models.SchoolFilter{})
	require.NoError(t, err)
	assert.Len(t, schools, 1)

	keys, err := h.schools.SchoolKeys(ctx, user(9), models.SchoolKeyFilter{})
	require.NoError(t, err)
	assert.Empty(t, keys)
	keys, err = h.schools.SchoolKeys(ctx, user(1), models.SchoolKeyFilter{})
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	keyData, err := h.schools.SchoolKeyData(ctx, user(1), models.SchoolKeyDataFilter{})
	require.NoError(t, err)
	assert.Len(t, keyData, 1)

	adminships, err := h.schools.Adminships(ctx, user(9), models.AdminshipFilter{})
	require.NoError(t, err)
	assert.Empty(t, adminships)

	subs, err := h.schools.Subscriptions(ctx, user(9), models.SubscriptionFilter{})
	require.NoError(t, err)
	assert.Empty(t, subs, "subscriptions are private to their creator")
	subs, err = h.schools.Subscriptions(ctx, user(1), models.SubscriptionFilter{})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
