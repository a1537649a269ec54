package service

import (
	"context"
	"strings"
	"time"

	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/pkg/contact"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

type ContactServiceI interface {
	Submit(request *contact.ContactRequest) (int64, error)
}

type ContactService struct {
	contactRepo repository.ContactRepositoryI
	host        string
	port        string
}

func NewContactService(contactRepo repository.ContactRepositoryI, host string, port string) ContactServiceI {
	return &ContactService{
		contactRepo: contactRepo,
		host:        host,
		port:        port,
	}
}

// Submit validates the inquiry before anything touches the database.
func (contactService *ContactService) Submit(request *contact.ContactRequest) (int64, error) {
	if request.Name == "" || request.Message == "" {
		return 0, customerror.ErrValidation
	}
	if !strings.Contains(request.Email, "@") {
		return 0, customerror.ErrValidation
	}
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	id, err := contactService.contactRepo.InsertContactRequest(ctx, request)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("ContactService.Submit")
		return 0, customErr
	}
	return id, nil
}
