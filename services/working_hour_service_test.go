package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkingHours(t *testing.T) {
	tests := []struct {
		name    string
		input   []WorkingHourInput
		wantErr error
		kind    ErrorKind
	}{
		{name: "geçerli hafta", input: []WorkingHourInput{
			{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
			{DayOfWeek: 0, IsClosed: true},
		}},
		{name: "aynı gün iki kez", input: []WorkingHourInput{
			{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "12:00"},
			{DayOfWeek: 2, OpenTime: "13:00", CloseTime: "18:00"},
		}, wantErr: ErrWorkingHoursDuplicate},
		{name: "açılış kapanıştan sonra", input: []WorkingHourInput{
			{DayOfWeek: 3, OpenTime: "18:00", CloseTime: "09:00"},
		}, kind: KindValidation},
		{name: "açılış kapanışa eşit", input: []WorkingHourInput{
			{DayOfWeek: 3, OpenTime: "09:00", CloseTime: "09:00"},
		}, kind: KindValidation},
		{name: "açık günde saat eksik", input: []WorkingHourInput{
			{DayOfWeek: 4, OpenTime: "09:00"},
		}, kind: KindValidation},
		{name: "geçersiz saat biçimi", input: []WorkingHourInput{
			{DayOfWeek: 4, OpenTime: "9:00", CloseTime: "18:00"},
		}, kind: KindValidation},
		{name: "geçersiz gün", input: []WorkingHourInput{
			{DayOfWeek: 7, IsClosed: true},
		}, kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := buildWorkingHours(WorkingHoursInput{Hours: tt.input})
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.kind != 0:
				requireKind(t, err, tt.kind)
			default:
				require.NoError(t, err)
				assert.Len(t, hours, len(tt.input))
			}
		})
	}
}

func TestBuildWorkingHours_ClosedDayDropsTimes(t *testing.T) {
	hours, err := buildWorkingHours(WorkingHoursInput{Hours: []WorkingHourInput{
		{DayOfWeek: 0, OpenTime: "10:00", CloseTime: "12:00", IsClosed: true},
	}})
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Empty(t, hours[0].OpenTime)
	assert.Empty(t, hours[0].CloseTime)
}

func TestWorkingHourService_Replace(t *testing.T) {
	f := newFixture(t)
	svc := NewWorkingHourService(f.db)

	_, err := svc.Replace(f.ctx, f.owner.ID, WorkingHoursInput{Hours: []WorkingHourInput{
		{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00"},
	}})
	require.NoError(t, err)

	hours, err := svc.Replace(f.ctx, f.owner.ID, WorkingHoursInput{Hours: []WorkingHourInput{
		{DayOfWeek: 6, OpenTime: "10:00", CloseTime: "16:00"},
	}})
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, 6, hours[0].DayOfWeek)
	assert.Equal(t, f.business.ID, hours[0].BusinessID)

	_, err = svc.Replace(f.ctx, f.customer.ID, WorkingHoursInput{})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
