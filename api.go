package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type pieceRequest struct {
	Kind   string
	Color  string
	Square *Coordinate
}

type moveRequest struct {
	Square *Coordinate
}

type pieceView struct {
	PieceID  uuid.UUID
	Kind     string
	Color    string
	Symbol   string
	Square   Coordinate
	HasMoved bool
	MoveType string
	Combined string `json:",omitempty"`
}

type pieceResponse struct {
	Href  string
	Piece pieceView
}

type movesResponse struct {
	Href    string
	Squares []Coordinate
	Count   int
}

type rosterView struct {
	RosterID uuid.UUID
	Pieces   []pieceView
}

type rosterResponse struct {
	Href   string
	Roster rosterView
}

type rostersResponse struct {
	Href    string
	Rosters []rosterView
}

type censusResponse struct {
	Href          string
	White         int
	Black         int
	Total         int
	Valid         bool
	WhiteMobility mobilitySummary
	BlackMobility mobilitySummary
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, errInvalidCoordinate) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, errIllegalMove) {
		return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestRoster(c echo.Context) (*Roster, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getRoster(id)
}

func requestPiece(c echo.Context) (*Piece, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getPiece(id)
}

func (piece Piece) view() pieceView {
	rule := piece.rule()
	return pieceView{
		PieceID:  piece.PieceID,
		Kind:     piece.kindLabel(),
		Color:    piece.colorLabel(),
		Symbol:   string(piece.symbol()),
		Square:   piece.Square,
		HasMoved: piece.HasMoved,
		MoveType: rule.moveType(),
		Combined: rule.combinedAbilities(),
	}
}

func (roster Roster) view() rosterView {
	pieces := make([]pieceView, 0, len(roster.Pieces))
	for _, piece := range roster.Pieces {
		pieces = append(pieces, piece.view())
	}
	return rosterView{RosterID: roster.RosterID, Pieces: pieces}
}

func responsePiece(piece *Piece) pieceResponse {
	return pieceResponse{Piece: piece.view(), Href: path.Join("/pieces", piece.PieceID.String())}
}

func responseMoves(piece *Piece) movesResponse {
	squares := piece.rule().possibleMoves(piece.Square)
	return movesResponse{
		Squares: squares,
		Count:   len(squares),
		Href:    path.Join("/pieces", piece.PieceID.String(), "moves"),
	}
}

func responseRoster(roster *Roster) rosterResponse {
	return rosterResponse{Roster: roster.view(), Href: path.Join("/rosters", roster.RosterID.String())}
}

func responseRosters(rosters []Roster) rostersResponse {
	views := make([]rosterView, 0, len(rosters))
	for _, roster := range rosters {
		views = append(views, roster.view())
	}
	return rostersResponse{Rosters: views, Href: "/rosters"}
}

func responseCensus(roster *Roster) (censusResponse, error) {
	count := roster.census()
	white, err := mobilityFor(roster.Pieces, false)
	if err != nil {
		return censusResponse{}, err
	}
	black, err := mobilityFor(roster.Pieces, true)
	if err != nil {
		return censusResponse{}, err
	}
	return censusResponse{
		Href:          path.Join("/rosters", roster.RosterID.String(), "census"),
		White:         count.White,
		Black:         count.Black,
		Total:         count.total(),
		Valid:         count.validate(),
		WhiteMobility: white,
		BlackMobility: black,
	}, nil
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.POST("/rosters", func(c echo.Context) error {
		roster, err := makeRoster()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseRoster(roster))
	})
	e.GET("/rosters", func(c echo.Context) error {
		rosters, err := getRosters()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseRosters(rosters))
	})
	e.GET("/rosters/:id", func(c echo.Context) error {
		roster, err := requestRoster(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseRoster(roster))
	})
	e.GET("/rosters/:id/census", func(c echo.Context) error {
		roster, err := requestRoster(c)
		if err != nil {
			return errToHTTP(err)
		}
		response, err := responseCensus(roster)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.POST("/rosters/:id/pieces", func(c echo.Context) error {
		roster, err := requestRoster(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request pieceRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		kind, ok := labelToKind[request.Kind]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown piece kind")
		}
		color, ok := labelToColor[request.Color]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown piece color")
		}
		if request.Square == nil {
			return echo.NewHTTPError(http.StatusNotAcceptable, "piece must provide a square")
		}
		piece, err := makePiece(roster.ID, kind|color, *request.Square)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responsePiece(piece))
	})
	e.GET("/pieces/:id", func(c echo.Context) error {
		piece, err := requestPiece(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePiece(piece))
	})
	e.PUT("/pieces/:id", func(c echo.Context) error {
		piece, err := requestPiece(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request moveRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Square == nil {
			return echo.NewHTTPError(http.StatusNotAcceptable, "move must provide a square")
		}
		if err := piece.moveTo(*request.Square); err != nil {
			return errToHTTP(err)
		}
		if err := piece.save(); err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePiece(piece))
	})
	e.GET("/pieces/:id/moves", func(c echo.Context) error {
		piece, err := requestPiece(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseMoves(piece))
	})
	e.DELETE("/pieces/:id", func(c echo.Context) error {
		piece, err := requestPiece(c)
		if err != nil {
			return errToHTTP(err)
		}
		if err := piece.release(); err != nil {
			return errToHTTP(err)
		}
		roster, err := getRosterByKey(piece.RosterID)
		if err != nil {
			return errToHTTP(err)
		}
		response, err := responseCensus(roster)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
