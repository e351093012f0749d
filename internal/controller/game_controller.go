package controller

import (
	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/render"
	"github.com/benbeisheim/robchess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	Move string `json:"move"`
}

// gameIDParam copies the route parameter out of the request buffer, since the
// service keeps it as a map key.
func gameIDParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("gameId"))
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var opts service.CreateOptions
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(c.UserContext(), playerID(c), opts)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := gameIDParam(c)

	color, err := gc.gameService.JoinGame(c.UserContext(), gameID, playerID(c))
	if err != nil {
		log.WithError(err).WithField("game", gameID).Debug("join failed")
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.UserContext(), gameIDParam(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.UserContext(), gameIDParam(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil || req.Move == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "move is required",
		})
	}

	state, err := gc.gameService.HandleMove(c.UserContext(), gameIDParam(c), playerID(c), req.Move)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) Think(c *fiber.Ctx) error {
	result, err := gc.gameService.Think(c.UserContext(), gameIDParam(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

// BoardSVG draws the current position, from black's side when ?flip=true.
func (gc *GameController) BoardSVG(c *fiber.Ctx) error {
	pos, last, err := gc.gameService.Position(c.UserContext(), gameIDParam(c))
	if err != nil {
		return fail(c, err)
	}

	opts := []func(*render.Options){render.Coordinates}
	if last != nil {
		opts = append(opts, render.Highlight(*last))
	}
	if c.QueryBool("flip") {
		opts = append(opts, render.FromBlack)
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	render.Board(c, &pos, opts...)
	return nil
}
