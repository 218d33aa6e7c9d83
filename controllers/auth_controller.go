package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"checkmate/config"
	"checkmate/models"
	"checkmate/storage"
	"checkmate/utils"
	"checkmate/validation"
)

type AuthController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewAuthController(store storage.Storage, cfg *config.Config) *AuthController {
	return &AuthController{Store: store, Cfg: cfg}
}

// Register creates a new user account and returns a JWT token.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in models.InsertUser
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := validation.Struct(in); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationError(c, verr.Fields)
		}
		return utils.BadRequest(c, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}
	in.Password = string(hashedPassword)

	user, err := ac.Store.CreateUser(in)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "A user with this email already exists")
		}
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login authenticates by email and password and returns a JWT token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.GetUserByEmail(input.Email)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if user == nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated caller's profile.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	user, err := ac.Store.GetUser(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if user == nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}
