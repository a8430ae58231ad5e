package production

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func newService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo, rbac.NewGate()), repo
}

func lineARequest() CreateLineRequest {
	return CreateLineRequest{
		Name:             "Line A",
		Product:          "X",
		OutputRate:       intp(100),
		OutputUnit:       "units",
		Status:           StatusActive,
		Efficiency:       floatp(90.0),
		TodayProduced:    intp(0),
		TargetProduction: intp(1000),
	}
}

func TestCreateFirstLineGetsIDOne(t *testing.T) {
	svc, repo := newService()

	line, err := svc.Create(context.Background(), rbac.RoleAdmin, lineARequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), line.ID)
	assert.Equal(t, []Material{}, line.Materials, "materials default to an empty sequence")

	// A second create by staff is rejected and the store stays at one record.
	_, err = svc.Create(context.Background(), rbac.RoleStaff, lineARequest())
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)

	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestProductionRoleMayWrite(t *testing.T) {
	svc, _ := newService()

	line, err := svc.Create(context.Background(), rbac.RoleProduction, lineARequest())
	require.NoError(t, err)

	line2, err := svc.Update(context.Background(), rbac.RoleProduction, line.ID, UpdateLineRequest{
		Name:             "Line A",
		Product:          "X",
		OutputRate:       intp(120),
		OutputUnit:       "units",
		Status:           "maintenance",
		Efficiency:       floatp(0),
		TodayProduced:    intp(0),
		TargetProduction: intp(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", line2.Status)
	assert.Equal(t, 120, line2.OutputRate)
}

func TestSalesRoleMayNotWrite(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Create(context.Background(), rbac.RoleSales, lineARequest())
	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
}

func TestUpdateKeepsStoredMaterials(t *testing.T) {
	svc, repo := newService()
	repo.Seed(DemoLines())

	updated, err := svc.Update(context.Background(), rbac.RoleAdmin, 1, UpdateLineRequest{
		Name:             "Shampoo Production Line",
		Product:          "Lavender Dreams Shampoo",
		OutputRate:       intp(500),
		OutputUnit:       "bottles",
		Status:           StatusActive,
		Efficiency:       floatp(95),
		TodayProduced:    intp(4000),
		TargetProduction: intp(4200),
	})
	require.NoError(t, err)
	assert.Len(t, updated.Materials, 3)
	assert.Equal(t, 500, updated.OutputRate)
}

func TestUpdateUnknownLine(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Update(context.Background(), rbac.RoleAdmin, 7, UpdateLineRequest{
		Name:             "Ghost",
		Product:          "X",
		OutputRate:       intp(1),
		OutputUnit:       "units",
		Status:           StatusActive,
		Efficiency:       floatp(1),
		TodayProduced:    intp(0),
		TargetProduction: intp(1),
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateMissingEfficiencyNamesField(t *testing.T) {
	svc, _ := newService()

	req := lineARequest()
	req.Efficiency = nil
	_, err := svc.Create(context.Background(), rbac.RoleAdmin, req)

	var verr *shared.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "efficiency", verr.Field)
}
