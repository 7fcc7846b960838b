package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/internal/authz"
	"jobport/internal/models"
)

func newBusinessFixture(t *testing.T) (BusinessService, *memBusinessRepo, *memLocationRepo) {
	t.Helper()
	businesses := newMemBusinessRepo()
	locations := newMemLocationRepo()
	require.NoError(t, locations.CreateProvince(&models.Province{ID: 1, Name: "Hanoi"}))
	require.NoError(t, locations.CreateDistrict(&models.District{ID: 10, ProvinceID: 1, Name: "Ba Dinh"}))

	auth := NewAuthService(newMemUserRepo(), businesses, newMemBlacklist(), newTestTokenService())
	svc := NewBusinessService(businesses, locations, auth)
	return svc, businesses, locations
}

func registerBusinessReq() models.RegisterBusinessRequest {
	return models.RegisterBusinessRequest{
		FullName:     "Ha Nguyen",
		Email:        "ha@example.com",
		Password:     "Sup3r-secret",
		PhoneNumber:  "0900000000",
		CompanyName:  "Acme",
		WorkPosition: "HR",
		ProvinceID:   1,
	}
}

func TestBusinessRegister(t *testing.T) {
	t.Run("creates an unverified business account", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		b, err := svc.Register(registerBusinessReq())
		require.NoError(t, err)
		assert.Equal(t, authz.RoleBusiness, b.Role)
		assert.True(t, b.IsActive)
		assert.False(t, b.IsVerifiedEmail)
		assert.False(t, b.IsVerifiedCompany)
	})

	t.Run("unknown province", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		req := registerBusinessReq()
		req.ProvinceID = 99
		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrProvinceNotFound)
	})

	t.Run("unknown district", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		req := registerBusinessReq()
		district := 99
		req.DistrictID = &district
		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrDistrictNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		_, err := svc.Register(registerBusinessReq())
		require.NoError(t, err)
		_, err = svc.Register(registerBusinessReq())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		req := registerBusinessReq()
		req.Password = "lettersonly"
		_, err := svc.Register(req)
		assert.Error(t, err)
	})
}

func TestBusinessApprove(t *testing.T) {
	t.Run("sets and clears the company-verified flag", func(t *testing.T) {
		svc, businesses, _ := newBusinessFixture(t)
		b, err := svc.Register(registerBusinessReq())
		require.NoError(t, err)

		approved, err := svc.Approve(b.ID, true)
		require.NoError(t, err)
		assert.True(t, approved.IsVerifiedCompany)
		stored, _ := businesses.GetByID(b.ID)
		assert.True(t, stored.IsVerifiedCompany)

		rejected, err := svc.Approve(b.ID, false)
		require.NoError(t, err)
		assert.False(t, rejected.IsVerifiedCompany)
		stored, _ = businesses.GetByID(b.ID)
		assert.False(t, stored.IsVerifiedCompany)
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, _, _ := newBusinessFixture(t)
		_, err := svc.Approve(404, true)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}
