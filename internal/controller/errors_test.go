package controller

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/robchess/internal/model"
	"github.com/benbeisheim/robchess/internal/service"
	"github.com/gofiber/fiber/v2"
	. "gopkg.in/check.v1"
)

type StatusSuite struct{}

var _ = Suite(&StatusSuite{})

func (s *StatusSuite) TestStatusFor(c *C) {
	cases := map[error]int{
		service.ErrGameNotFound:                       fiber.StatusNotFound,
		service.ErrNotInGame:                          fiber.StatusForbidden,
		service.ErrGameFull:                           fiber.StatusConflict,
		service.ErrNotYourTurn:                        fiber.StatusConflict,
		fmt.Errorf("%w: white", model.ErrNoLegalMoves): fiber.StatusConflict,
		fmt.Errorf("%w: e2e5", model.ErrIllegalMove):   fiber.StatusBadRequest,
		model.ErrInvalidNotation:                      fiber.StatusBadRequest,
		errors.New("boom"):                            fiber.StatusInternalServerError,
	}
	for err, want := range cases {
		c.Check(statusFor(err), Equals, want, Commentf("%v", err))
	}
}
