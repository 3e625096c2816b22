package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const viaCEPBaseURL = "https://viacep.com.br"

var (
	ErrInvalidCEP  = errors.New("CEP inválido")
	ErrCEPNotFound = errors.New("CEP não encontrado")
)

// Address is the subset of the ViaCEP payload the booking form uses.
type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`

	// ViaCEP signals an unknown code with an "erro" member whose type has
	// changed across API revisions, so it is kept raw.
	Erro json.RawMessage `json:"erro,omitempty"`
}

// CEPClient looks postal codes up on ViaCEP so the browser client never has
// to talk to a third party itself.
type CEPClient struct {
	baseURL string
	http    *http.Client
	logger  log.Logger
}

// NewCEPClient builds a client against baseURL, or the public ViaCEP host
// when baseURL is empty.
func NewCEPClient(baseURL string, logger log.Logger) *CEPClient {
	if baseURL == "" {
		baseURL = viaCEPBaseURL
	}
	return &CEPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  log.With(logger, "component", "cep-client"),
	}
}

// Lookup resolves an 8-digit CEP to an address. Formatting characters in the
// input are ignored.
func (c *CEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cep)
	if len(digits) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCEP, cep)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		level.Error(c.logger).Log("msg", "viacep request failed", "cep", digits, "err", err)
		return nil, fmt.Errorf("consulta ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCEP, cep)
	}
	if resp.StatusCode != http.StatusOK {
		level.Error(c.logger).Log("msg", "viacep unexpected status", "cep", digits, "status", resp.StatusCode)
		return nil, fmt.Errorf("consulta ViaCEP: status %d", resp.StatusCode)
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, fmt.Errorf("consulta ViaCEP: %w", err)
	}
	if len(addr.Erro) != 0 {
		return nil, ErrCEPNotFound
	}
	return &addr, nil
}
