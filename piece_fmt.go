package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

func (coordinate Coordinate) String() string {
	return fmt.Sprintf("%c%d", 'a'+coordinate.X, 1+coordinate.Y)
}

func parseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("invalid coordinate format %d %s", len(s), s)
	}
	coordinate, err := makeCoordinate(int(s[0]-'a'), int(s[1]-'1'))
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid coordinate %s: %w", s, err)
	}
	return coordinate, nil
}

func (coordinate *Coordinate) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := parseCoordinate(s)
	if err != nil {
		return err
	}
	*coordinate = parsed
	return nil
}

func (coordinate Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinate.String())
}

func (coordinate Coordinate) Value() (driver.Value, error) {
	return coordinate.String(), nil
}

func (coordinate *Coordinate) Scan(cell interface{}) error {
	switch cell := cell.(type) {
	case string:
		parsed, err := parseCoordinate(cell)
		if err != nil {
			return err
		}
		*coordinate = parsed
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	return nil
}

func (piece Piece) symbol() rune {
	if piece.black() {
		return kindToSymbolBlack[piece.Kind&^blackBit]
	}
	return kindToSymbolWhite[piece.Kind&^blackBit]
}

func (piece Piece) kindLabel() string {
	return kindToLabel[piece.Kind&^blackBit]
}

func (piece Piece) colorLabel() string {
	if piece.black() {
		return "black"
	}
	return "white"
}
