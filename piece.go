package main

import (
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Piece piece.
type Piece struct {
	gorm.Model

	PieceID  uuid.UUID  `gorm:"<-:create;type:varchar;size:20;uniqueIndex"`
	RosterID uint       `gorm:"index;not null"`
	Kind     uint8      `gorm:"<-:create;not null"`
	Square   Coordinate `gorm:"type:varchar;size:2;not null"`
	HasMoved bool
}

func (piece Piece) black() bool {
	return piece.Kind&blackBit != 0
}

func (piece Piece) rule() moveRule {
	return kindToRule[piece.Kind&^blackBit]
}

func (piece Piece) canMoveTo(target Coordinate) bool {
	return piece.rule().canMoveTo(piece.Square, target)
}

// moveTo applies the single state transition a piece has. On any failure
// the piece is left exactly as it was.
func (piece *Piece) moveTo(target Coordinate) error {
	if !target.inBounds() {
		return errInvalidCoordinate
	}
	if !piece.canMoveTo(target) {
		return errIllegalMove
	}
	piece.Square = target
	piece.HasMoved = true
	return nil
}

func makePiece(rosterID uint, kind uint8, square Coordinate) (*Piece, error) {
	if !square.inBounds() {
		return nil, errInvalidCoordinate
	}
	piece := Piece{PieceID: uuid.NewV4(), RosterID: rosterID, Kind: kind, Square: square}
	if err := db.Create(&piece).Error; err != nil {
		return nil, err
	}
	return &piece, nil
}

func getPiece(id uuid.UUID) (*Piece, error) {
	var piece Piece
	if err := db.First(&piece, Piece{PieceID: id}).Error; err != nil {
		return nil, err
	}
	return &piece, nil
}

func (piece *Piece) save() error {
	return db.Save(piece).Error
}

func (piece *Piece) release() error {
	return db.Delete(piece).Error
}
