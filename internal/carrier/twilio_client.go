package carrier

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const apiVersion = "2010-04-01"

// incomingPhoneNumber mirrors the carrier's IncomingPhoneNumber resource.
type incomingPhoneNumber struct {
	Sid          string `json:"sid"`
	PhoneNumber  string `json:"phone_number"`
	FriendlyName string `json:"friendly_name"`
	SMSURL       string `json:"sms_url"`
}

// availablePhoneNumber mirrors the carrier's AvailablePhoneNumber resource.
type availablePhoneNumber struct {
	PhoneNumber  string `json:"phone_number"`
	FriendlyName string `json:"friendly_name"`
	Region       string `json:"region"`
	ISOCountry   string `json:"iso_country"`
}

type availableNumbersPage struct {
	AvailablePhoneNumbers []availablePhoneNumber `json:"available_phone_numbers"`
}

type incomingNumbersPage struct {
	IncomingPhoneNumbers []incomingPhoneNumber `json:"incoming_phone_numbers"`
}

// apiErrorBody is the carrier's error envelope.
type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// TwilioClient is the Twilio-backed implementation of Gateway.
type TwilioClient struct {
	httpClient *resty.Client
	accountSID string
	logger     *zap.Logger
}

// NewTwilioClient creates a Twilio gateway client. baseURL is overridable so
// tests can point it at a local stub.
func NewTwilioClient(baseURL, accountSID, authToken string, logger *zap.Logger) *TwilioClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(accountSID, authToken).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return &TwilioClient{
		httpClient: client,
		accountSID: accountSID,
		logger:     logger,
	}
}

func (c *TwilioClient) accountPath(resource string) string {
	return fmt.Sprintf("/%s/Accounts/%s/%s", apiVersion, c.accountSID, resource)
}

// asAPIError converts a non-2xx carrier response into an *APIError.
func asAPIError(resp *resty.Response) error {
	body, ok := resp.Error().(*apiErrorBody)
	if !ok || body == nil || body.Message == "" {
		return &APIError{Status: resp.StatusCode(), Message: resp.Status()}
	}
	return &APIError{Status: body.Status, Code: body.Code, Message: body.Message}
}

// SearchAvailableNumbers queries the carrier for purchasable local numbers.
// Read only; failures are reported to the caller and safe to retry.
func (c *TwilioClient) SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]AvailableNumber, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var page availableNumbersPage
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("PageSize", strconv.Itoa(limit)).
		SetResult(&page).
		SetError(&apiErrorBody{})
	if areaCode != "" {
		req.SetQueryParam("AreaCode", areaCode)
	}

	resp, err := req.Get(c.accountPath("AvailablePhoneNumbers/US/Local.json"))
	if err != nil {
		return nil, fmt.Errorf("carrier search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, asAPIError(resp)
	}

	numbers := make([]AvailableNumber, 0, len(page.AvailablePhoneNumbers))
	for _, n := range page.AvailablePhoneNumbers {
		numbers = append(numbers, AvailableNumber{
			Number:       n.PhoneNumber,
			FriendlyName: n.FriendlyName,
			Region:       n.Region,
			ISOCountry:   n.ISOCountry,
		})
	}

	c.logger.Info("Carrier number search completed",
		zap.String("area_code", areaCode),
		zap.Int("results", len(numbers)),
	)
	return numbers, nil
}

// ProvisionNumber purchases a specific number and points its SMS webhook at
// this platform. Deliberately not retried: a timed-out purchase may have
// succeeded carrier-side and must be reconciled by an operator instead.
func (c *TwilioClient) ProvisionNumber(ctx context.Context, number string, smsWebhookURL string) (*OwnedNumber, error) {
	var created incomingPhoneNumber
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"PhoneNumber": number,
			"SmsUrl":      smsWebhookURL,
			"SmsMethod":   "POST",
		}).
		SetResult(&created).
		SetError(&apiErrorBody{}).
		Post(c.accountPath("IncomingPhoneNumbers.json"))
	if err != nil {
		c.logger.Error("Carrier provision request failed; carrier-side state is unknown",
			zap.String("number", number),
			zap.Error(err),
		)
		return nil, fmt.Errorf("carrier provision request failed: %w", err)
	}
	if resp.IsError() {
		return nil, asAPIError(resp)
	}

	c.logger.Info("Provisioned number at carrier",
		zap.String("number", created.PhoneNumber),
		zap.String("carrier_ref", created.Sid),
	)
	return &OwnedNumber{
		CarrierRef:   created.Sid,
		Number:       created.PhoneNumber,
		FriendlyName: created.FriendlyName,
		SMSURL:       created.SMSURL,
	}, nil
}

// ReleaseNumber deprovisions a number on the carrier account.
func (c *TwilioClient) ReleaseNumber(ctx context.Context, carrierRef string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(&apiErrorBody{}).
		Delete(c.accountPath("IncomingPhoneNumbers/" + carrierRef + ".json"))
	if err != nil {
		return fmt.Errorf("carrier release request failed: %w", err)
	}
	if resp.IsError() {
		return asAPIError(resp)
	}

	c.logger.Info("Released number at carrier", zap.String("carrier_ref", carrierRef))
	return nil
}

// ListOwnedNumbers returns every number currently held by the account.
func (c *TwilioClient) ListOwnedNumbers(ctx context.Context) ([]OwnedNumber, error) {
	var page incomingNumbersPage
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("PageSize", "1000").
		SetResult(&page).
		SetError(&apiErrorBody{}).
		Get(c.accountPath("IncomingPhoneNumbers.json"))
	if err != nil {
		return nil, fmt.Errorf("carrier list request failed: %w", err)
	}
	if resp.IsError() {
		return nil, asAPIError(resp)
	}

	numbers := make([]OwnedNumber, 0, len(page.IncomingPhoneNumbers))
	for _, n := range page.IncomingPhoneNumbers {
		numbers = append(numbers, OwnedNumber{
			CarrierRef:   n.Sid,
			Number:       n.PhoneNumber,
			FriendlyName: n.FriendlyName,
			SMSURL:       n.SMSURL,
		})
	}
	return numbers, nil
}
