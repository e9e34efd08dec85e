package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"trip-planner/internal/ports"
)

// The session is an explicit two-state machine: it alternates between
// waiting for an origin and waiting for a destination, and either prompt
// moves it to terminated on the quit sentinel.
type sessionState int

const (
	stateAwaitingOrigin sessionState = iota
	stateAwaitingDestination
	stateTerminated
)

const quitSentinel = "quit"

// Session drives the blocking read-eval-print cycle over one input scanner.
// The place repository is optional; without it every input goes to the API
// verbatim.
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	provider  ports.DirectionsProvider
	places    ports.PlaceRepository
	presenter *Presenter
}

func NewSession(
	in *bufio.Scanner,
	out io.Writer,
	provider ports.DirectionsProvider,
	places ports.PlaceRepository,
) *Session {
	return &Session{
		in:        in,
		out:       out,
		provider:  provider,
		places:    places,
		presenter: NewPresenter(out),
	}
}

// PromptCredential reads the API key from the operator, trimmed, with no
// masking and no validation; the remote service is the judge of the key.
func PromptCredential(in *bufio.Scanner, out io.Writer) string {
	fmt.Fprint(out, "Enter your MapQuest API Key: ")
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// Run loops until either prompt receives the quit sentinel (any casing,
// surrounding whitespace ignored) or input is exhausted. A failed query
// never ends the session; control always returns to the origin prompt.
func (s *Session) Run(ctx context.Context) error {
	state := stateAwaitingOrigin
	var origin string

	for state != stateTerminated {
		switch state {
		case stateAwaitingOrigin:
			input, ok := s.prompt("Enter the starting location (or type 'quit' to exit): ")
			if !ok || isQuit(input) {
				state = stateTerminated
				break
			}

			origin = input
			state = stateAwaitingDestination

		case stateAwaitingDestination:
			input, ok := s.prompt("Enter the destination (or type 'quit' to exit): ")
			if !ok || isQuit(input) {
				state = stateTerminated
				break
			}

			trip, err := s.provider.GetTrip(
				ctx,
				s.resolvePlace(ctx, origin),
				s.resolvePlace(ctx, input),
			)
			if err != nil {
				// Transport failure. The provider already logged the
				// category; the operator just learns no data arrived.
				s.presenter.Show(nil)
			} else {
				s.presenter.Show(trip)
			}

			state = stateAwaitingOrigin
		}
	}

	return s.in.Err()
}

// prompt writes the prompt text and reads one trimmed line.
// ok is false when input is exhausted.
func (s *Session) prompt(text string) (_ string, ok bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func isQuit(input string) bool {
	return strings.EqualFold(input, quitSentinel)
}

// resolvePlace swaps a saved alias for its stored address. Unknown input
// passes through to the API untouched, empty input included.
func (s *Session) resolvePlace(ctx context.Context, input string) string {
	if s.places == nil || input == "" {
		return input
	}

	place, err := s.places.FindByAlias(ctx, input)
	if err != nil {
		if !errors.Is(err, ports.ErrPlaceNotFound) {
			log.Printf("place lookup failed: alias=%q err=%v", input, err)
		}
		return input
	}

	log.Printf("resolved place alias=%q address=%q", place.Alias, place.Address)
	return place.Address
}
