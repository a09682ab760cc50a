package seed

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Info().Msg("user 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "admin",
			Password: string(hashedPassword),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Error().Err(err).Msg("failed to create admin user")
		} else {
			log.Info().Msg("user 'admin' created")
		}
	}

	// Certificate type tiers. Exclusion entries are exact field names or
	// section identifiers; the cheaper the tier, the more of the report
	// is switched off.
	tiers := []models.CertificateTypeModel{
		{
			Name:     "Essential",
			Price:    99,
			Physical: false,
			ExcludedReportFormFields: pq.StringArray{
				"case_bezel_insert",
				"bracelet_link",
				"technical_weight",
				"technical_timing",
				"technical_waterproofing",
				"value",
				"case_hallmarks",
				"movement_jewels_count",
				"movement_frequency",
				"movement_power_reserve",
			},
		},
		{
			Name:     "Premium",
			Price:    249,
			Physical: true,
			ExcludedReportFormFields: pq.StringArray{
				"technical_timing",
				"value_insurance",
			},
		},
		{
			Name:                     "Excellence",
			Price:                    499,
			Physical:                 true,
			ExcludedReportFormFields: pq.StringArray{},
		},
	}

	for _, tier := range tiers {
		var existing models.CertificateTypeModel
		if err := db.Where("name = ?", tier.Name).First(&existing).Error; err == nil {
			log.Info().Str("name", tier.Name).Msg("certificate type already exists")
			continue
		}
		if err := db.Create(&tier).Error; err != nil {
			log.Error().Err(err).Str("name", tier.Name).Msg("failed to create certificate type")
		} else {
			log.Info().Str("name", tier.Name).Msg("certificate type created")
		}
	}
}
