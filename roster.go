package main

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Roster roster.
type Roster struct {
	gorm.Model

	RosterID uuid.UUID `gorm:"<-:create;type:varchar;size:20;uniqueIndex"`
	Pieces   []Piece
}

func makeRoster() (*Roster, error) {
	id := uuid.NewV4()
	if err := db.Create(&Roster{RosterID: id}).Error; err != nil {
		return nil, err
	}
	return getRoster(id)
}

func getRoster(id uuid.UUID) (*Roster, error) {
	var roster Roster
	if err := db.Preload(clause.Associations).First(&roster, Roster{RosterID: id}).Error; err != nil {
		return nil, err
	}
	return &roster, nil
}

func getRosterByKey(key uint) (*Roster, error) {
	var roster Roster
	if err := db.Preload(clause.Associations).First(&roster, key).Error; err != nil {
		return nil, err
	}
	return &roster, nil
}

func getRosters() ([]Roster, error) {
	var rosters []Roster
	if err := db.Preload(clause.Associations).Find(&rosters).Error; err != nil {
		return nil, err
	}
	return rosters, nil
}

func (roster Roster) census() census {
	return censusFor(roster.Pieces)
}

func (roster Roster) validateBoardState() bool {
	return roster.census().validate()
}

// rosterIdle prunes rosters that have sat empty for an hour.
func rosterIdle() error {
	hourAgo := time.Now().Add(time.Hour * -1)
	var rosters []Roster
	if err := db.Preload(clause.Associations).Where("updated_at < ?", hourAgo).Find(&rosters).Error; err != nil {
		return err
	}
	for _, roster := range rosters {
		if len(roster.Pieces) > 0 {
			continue
		}
		if err := db.Delete(&roster).Error; err != nil {
			return err
		}
	}
	return nil
}
