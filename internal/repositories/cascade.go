package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
	"travelling/pkg/utils"
)

// The helpers below remove dependent rows inside the caller's transaction,
// child tables first.

func deleteAttractions(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Unscoped().Delete(&db_models.RatingToAttraction{}, "attraction_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Delete(&db_models.Contract{}, "attraction_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Delete(&db_models.LocalReference{}, "local_type = ? AND local_id IN ?", db_models.LocalAttraction, ids).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM attraction_categories WHERE attraction_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&db_models.Attraction{}, "id IN ?", ids).Error
}

func deleteEstablishments(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Unscoped().Delete(&db_models.RatingToEstablishment{}, "establishment_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Delete(&db_models.LocalReference{}, "local_type = ? AND local_id IN ?", db_models.LocalEstablishment, ids).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM establishment_categories WHERE establishment_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&db_models.Establishment{}, "id IN ?", ids).Error
}

func deleteTravellings(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Unscoped().Delete(&db_models.LocalReference{}, "travelling_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&db_models.Travelling{}, "id IN ?", ids).Error
}

// deleteTouristRatings drops every rating the tourist gave and recomputes the
// average of each entity that lost one.
func deleteTouristRatings(tx *gorm.DB, touristID uuid.UUID) error {
	for _, target := range []db_models.RatingTarget{db_models.RatingTargetAttraction, db_models.RatingTargetEstablishment} {
		t := ratingTables[target]

		var targetIDs []uuid.UUID
		if err := tx.Table(t.table).Where("tourist_id = ?", touristID).Distinct().Pluck(t.targetColumn, &targetIDs).Error; err != nil {
			return err
		}
		if len(targetIDs) == 0 {
			continue
		}
		if err := tx.Unscoped().Delete(t.row(), "tourist_id = ?", touristID).Error; err != nil {
			return err
		}

		for _, targetID := range targetIDs {
			var values []float64
			err := tx.Table(t.table).
				Where(t.targetColumn+" = ? AND deleted_at IS NULL", targetID).
				Pluck("value", &values).Error
			if err != nil {
				return err
			}
			err = tx.Model(t.parent()).
				Where("id = ?", targetID).
				Update("average_rating", utils.CalculateAverage(values)).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func idsOf(tx *gorm.DB, model interface{}, column string, value uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := tx.Unscoped().Model(model).Where(column+" = ?", value).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
