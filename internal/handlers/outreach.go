package handlers

import (
	"charity/internal/services/outreach"
	"charity/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type OutreachHandler struct {
	events      outreach.EventService
	volunteers  outreach.VolunteerService
	contacts    outreach.ContactService
	newsletters outreach.NewsletterService
}

func NewOutreachHandler(
	events outreach.EventService,
	volunteers outreach.VolunteerService,
	contacts outreach.ContactService,
	newsletters outreach.NewsletterService,
) *OutreachHandler {
	return &OutreachHandler{
		events:      events,
		volunteers:  volunteers,
		contacts:    contacts,
		newsletters: newsletters,
	}
}

type statusInput struct {
	Status string `json:"status"`
}

// Events

func (h *OutreachHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.events.List(c.UserContext(), c.QueryBool("upcoming", false))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Events retrieved", events)
}

func (h *OutreachHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	event, err := h.events.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Event retrieved", event)
}

func (h *OutreachHandler) CreateEvent(c *fiber.Ctx) error {
	var input outreach.EventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	event, err := h.events.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Event created", event)
}

func (h *OutreachHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var patch outreach.EventPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	event, err := h.events.Update(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Event updated", event)
}

func (h *OutreachHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.events.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Event deleted", nil)
}

// Volunteers

func (h *OutreachHandler) ApplyVolunteer(c *fiber.Ctx) error {
	var input outreach.VolunteerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	volunteer, err := h.volunteers.Apply(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Application received", volunteer)
}

func (h *OutreachHandler) ListVolunteers(c *fiber.Ctx) error {
	volunteers, err := h.volunteers.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Volunteers retrieved", volunteers)
}

func (h *OutreachHandler) UpdateVolunteerStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	volunteer, err := h.volunteers.SetStatus(c.UserContext(), id, input.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Volunteer updated", volunteer)
}

// Contacts

func (h *OutreachHandler) SubmitContact(c *fiber.Ctx) error {
	var input outreach.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	contact, err := h.contacts.Submit(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Message received", contact)
}

func (h *OutreachHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.contacts.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Contacts retrieved", contacts)
}

func (h *OutreachHandler) UpdateContactStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	contact, err := h.contacts.SetStatus(c.UserContext(), id, input.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Contact updated", contact)
}

// Newsletter

func (h *OutreachHandler) Subscribe(c *fiber.Ctx) error {
	var input outreach.SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	subscriber, err := h.newsletters.Subscribe(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	// The token is only ever shown to the subscriber themselves.
	return response.Created(c, "Subscribed", fiber.Map{
		"subscriber":        subscriber,
		"unsubscribe_token": subscriber.UnsubscribeToken,
	})
}

func (h *OutreachHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.newsletters.Unsubscribe(c.UserContext(), c.Params("token")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Unsubscribed", nil)
}

func (h *OutreachHandler) ListSubscribers(c *fiber.Ctx) error {
	subscribers, err := h.newsletters.Subscribers(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Subscribers retrieved", subscribers)
}
