package worker

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"aurora/models"
)

// ActivityWorker prunes the append-only activity log so teams keep a
// bounded history. Reads are capped to the newest 20 entries anyway;
// retention just stops dead rows from accumulating forever.
type ActivityWorker struct {
	db        *gorm.DB
	logger    *log.Logger
	keepCount int
}

func NewActivityWorker(db *gorm.DB, logger *log.Logger) *ActivityWorker {
	return &ActivityWorker{
		db:        db,
		logger:    logger,
		keepCount: 100,
	}
}

func (aw *ActivityWorker) Start(ctx context.Context) {
	aw.logger.Println("Starting activity retention worker...")
	ticker := time.NewTicker(24 * time.Hour)

	for {
		select {
		case <-ticker.C:
			aw.pruneAll()
		case <-ctx.Done():
			aw.logger.Println("Stopping activity retention worker...")
			ticker.Stop()
			return
		}
	}
}

func (aw *ActivityWorker) pruneAll() {
	var ownerIDs []uint
	if err := aw.db.Model(&models.Activity{}).
		Distinct("team_owner_id").
		Pluck("team_owner_id", &ownerIDs).Error; err != nil {
		aw.logger.Printf("Failed to list teams with activity: %v", err)
		return
	}

	for _, ownerID := range ownerIDs {
		if err := aw.pruneTeam(ownerID); err != nil {
			aw.logger.Printf("Failed to prune activity for team %d: %v", ownerID, err)
		}
	}
}

// pruneTeam deletes everything older than the newest keepCount entries
// for one team.
func (aw *ActivityWorker) pruneTeam(ownerID uint) error {
	var cutoffIDs []uint
	if err := aw.db.Model(&models.Activity{}).
		Where("team_owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(aw.keepCount).
		Pluck("id", &cutoffIDs).Error; err != nil {
		return err
	}
	if len(cutoffIDs) < aw.keepCount {
		return nil
	}

	return aw.db.Unscoped().
		Where("team_owner_id = ? AND id NOT IN ?", ownerID, cutoffIDs).
		Delete(&models.Activity{}).Error
}
