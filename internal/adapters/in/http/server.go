package http

import (
	"errors"
	"net/http"

	"intake/internal/adapters/out/postgres/customerrepo"
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/generated/servers"
	"intake/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	saveDraftHandler commands.SaveDraftCommandHandler
	finalizeHandler  commands.FinalizeIntakeCommandHandler

	// Query handlers
	checkDuplicatesHandler queries.CheckDuplicatesQueryHandler
	searchCustomerHandler  queries.SearchCustomerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveDraftHandler commands.SaveDraftCommandHandler,
	finalizeHandler commands.FinalizeIntakeCommandHandler,
	checkDuplicatesHandler queries.CheckDuplicatesQueryHandler,
	searchCustomerHandler queries.SearchCustomerQueryHandler,
) *Server {
	return &Server{
		saveDraftHandler:       saveDraftHandler,
		finalizeHandler:        finalizeHandler,
		checkDuplicatesHandler: checkDuplicatesHandler,
		searchCustomerHandler:  searchCustomerHandler,
	}
}

// SaveDraft handles POST /api/v1/intake/drafts - creates or fully replaces a draft.
func (s *Server) SaveDraft(ctx echo.Context) error {
	var request servers.DraftSaveRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	form, err := formFromAPI(request.Form)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid form data: " + err.Error(),
		})
	}

	var draftID *kernel.UUID
	if request.DraftId != nil {
		id, idErr := kernel.UUIDFromBytes(request.DraftId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid draft id: " + idErr.Error(),
			})
		}
		draftID = &id
	}

	cmd, err := commands.NewSaveDraftCommand(form, draftID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid draft data: " + err.Error(),
		})
	}

	savedID, err := s.saveDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Draft not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save draft",
		})
	}

	return ctx.JSON(http.StatusOK, servers.DraftSaveResponse{
		DraftId: savedID.Bytes(),
	})
}

// CheckDuplicates handles POST /api/v1/intake/duplicate-check - runs the
// exhaustive duplicate guard over identification, email and phone.
func (s *Server) CheckDuplicates(ctx echo.Context) error {
	var request servers.DuplicateCheckRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewCheckDuplicatesQuery(
		stringValue(request.Identification),
		stringValue(request.Email),
		stringValue(request.Phone),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid duplicate check: " + err.Error(),
		})
	}

	response, err := s.checkDuplicatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// A store failure must surface as one. Returning all-clear here would
		// let a colliding customer slip through.
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check duplicates",
		})
	}

	return ctx.JSON(http.StatusOK, servers.DuplicateCheckResponse{
		Identification: response.Identification,
		Email:          response.Email,
		Phone:          response.Phone,
	})
}

// SearchIdentity handles GET /api/v1/intake/identity-search - matches exactly
// one field of the customer index against the given identifier.
func (s *Server) SearchIdentity(ctx echo.Context, params servers.SearchIdentityParams) error {
	query, err := queries.NewSearchCustomerQuery(queries.SearchType(params.Type), params.Identifier)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid identity search: " + err.Error(),
		})
	}

	response, err := s.searchCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to search customers",
		})
	}

	result := servers.IdentitySearchResponse{Found: response.Found}
	if response.Found && response.Customer != nil {
		result.Customer = &servers.Customer{
			Id:             response.Customer.ID.Bytes(),
			Identification: response.Customer.Identification,
			FirstName:      response.Customer.FirstName,
			LastName:       response.Customer.LastName,
			Email:          response.Customer.Email,
			Phone:          response.Customer.Phone,
		}
		if response.Customer.Address != nil {
			result.Address = &servers.Address{
				Street:       response.Customer.Address.Street,
				City:         response.Customer.Address.City,
				Province:     response.Customer.Address.Province,
				Instructions: response.Customer.Address.Instructions,
			}
		}
	}

	return ctx.JSON(http.StatusOK, result)
}

// FinalizeIntake handles POST /api/v1/intake/finalize - turns a completed
// form into a customer and order pair.
func (s *Server) FinalizeIntake(ctx echo.Context) error {
	var request servers.FinalizeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	form, err := formFromAPI(request.Form)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid form data: " + err.Error(),
		})
	}

	draftID, err := kernel.UUIDFromBytes(request.DraftId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid draft id: " + err.Error(),
		})
	}

	cmd, err := commands.NewFinalizeIntakeCommand(form, draftID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Form is not submittable: " + err.Error(),
		})
	}

	result, err := s.finalizeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, customerrepo.ErrCustomerConflict):
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Customer identification, email or phone is already taken",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Draft not found",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to finalize intake",
			})
		}
	}

	return ctx.JSON(http.StatusOK, servers.FinalizeResponse{
		OrderId:    result.OrderID.Bytes(),
		CustomerId: result.CustomerID.Bytes(),
	})
}

// formFromAPI rebuilds the domain form state from its wire representation.
func formFromAPI(form servers.FormState) (intake.FormState, error) {
	result := intake.FormState{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Identification: form.Identification,
		Phone:          form.Phone,
		Email:          form.Email,
		Street:         form.Street,
		City:           form.City,
		Province:       form.Province,
		Instructions:   form.Instructions,
		CurrentStep:    intake.Step(form.CurrentStep),
		Mode:           intake.CustomerMode(form.CustomerMode),
	}

	if err := result.CurrentStep.Validate(); err != nil {
		return intake.FormState{}, err
	}

	if form.BoundCustomerId != nil {
		boundID, err := kernel.UUIDFromBytes(form.BoundCustomerId[:])
		if err != nil {
			return intake.FormState{}, err
		}
		result.BoundCustomerID = &boundID
	}

	return result, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
