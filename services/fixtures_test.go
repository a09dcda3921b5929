package services

import (
	"context"
	"testing"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture testlerde ortak kullanılan bir işletme, sahibi ve bir müşteri kurar.
type fixture struct {
	db       *gorm.DB
	ctx      context.Context
	owner    models.User
	customer models.User
	city     models.City
	district models.District
	category models.Category
	business models.Business
	petType  models.PetType
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	f := &fixture{db: db, ctx: context.Background()}

	f.owner = models.User{Name: "Ayşe Kuaför", Email: "ayse@example.com", Role: models.RoleBusinessOwner, IsActive: true}
	require.NoError(t, db.Create(&f.owner).Error)
	f.customer = models.User{Name: "Mehmet Yılmaz", Email: "mehmet@example.com", Phone: "05551112233", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.Create(&f.customer).Error)

	f.city = models.City{Name: "İstanbul", Slug: "istanbul", PlateCode: 34}
	require.NoError(t, db.Create(&f.city).Error)
	f.district = models.District{CityID: f.city.ID, Name: "Kadıköy", Slug: "kadikoy"}
	require.NoError(t, db.Create(&f.district).Error)
	f.category = models.Category{Name: "Köpek Kuaförü", Slug: "kopek-kuaforu", IsActive: true}
	require.NoError(t, db.Create(&f.category).Error)
	f.petType = models.PetType{Name: "Köpek", Slug: "kopek"}
	require.NoError(t, db.Create(&f.petType).Error)

	f.business = models.Business{
		Name:       "Pati Bakım",
		Slug:       "pati-bakim",
		CityID:     f.city.ID,
		DistrictID: f.district.ID,
		CategoryID: f.category.ID,
		OwnerID:    &f.owner.ID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&f.business).Error)
	return f
}

func (f *fixture) addPet(t *testing.T, userID uint, name string) models.Pet {
	t.Helper()
	pet := models.Pet{UserID: userID, PetTypeID: &f.petType.ID, Name: name, Breed: "Golden Retriever"}
	require.NoError(t, f.db.Create(&pet).Error)
	return pet
}

func (f *fixture) addAppointment(t *testing.T, pet models.Pet, date time.Time, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		BusinessID: f.business.ID,
		PetID:      pet.ID,
		UserID:     pet.UserID,
		Date:       date,
		Status:     status,
	}
	require.NoError(t, f.db.Create(&appointment).Error)
	return appointment
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "beklenmeyen hata: %v", err)
}
