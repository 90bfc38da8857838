package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	httppkg "github.com/Kael08/JOB-PORTAL/internal/pkg/http"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/Kael08/JOB-PORTAL/services/auth"
)

const smsStatusOK = 100

// smsResponse is the subset of the SMS.ru reply the gateway inspects
type smsResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	StatusText string `json:"status_text"`
}

func verificationMessage(code string) string {
	return fmt.Sprintf("Your verification code: %s. Do not share this code with anyone.", code)
}

// SMSGateway sends codes through the SMS.ru HTTP API
type SMSGateway struct {
	client *httppkg.EnhancedClient
	apiURL string
	apiKey string
	logger *logger.ZapLogger
}

// NewSMSGateway creates a gateway for the configured provider
func NewSMSGateway(client *httppkg.EnhancedClient, cfg models.SMSConfig, zapLogger *logger.ZapLogger) *SMSGateway {
	return &SMSGateway{
		client: client,
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		logger: zapLogger,
	}
}

// NewOTPSender picks the log sink in test mode and SMS.ru otherwise
func NewOTPSender(cfg models.SMSConfig, zapLogger *logger.ZapLogger) auth.OTPSender {
	if cfg.TestMode {
		zapLogger.Warn("SMS test mode is enabled, verification codes are written to the log and never delivered",
			logger.String("mode", "test"))
		return NewLogSender(zapLogger)
	}
	client := httppkg.NewEnhancedClient(zapLogger, httppkg.DefaultClientConfig(cfg.Timeout))
	return NewSMSGateway(client, cfg, zapLogger)
}

// SendOTP asks the provider to deliver code to phone
func (g *SMSGateway) SendOTP(ctx context.Context, phone, code string) (bool, error) {
	params := url.Values{}
	params.Set("api_id", g.apiKey)
	params.Set("to", phone)
	params.Set("msg", verificationMessage(code))
	params.Set("json", "1")

	resp, err := g.client.Get(ctx, g.apiURL+"?"+params.Encode())
	if err != nil {
		return false, fmt.Errorf("sms provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("SMS provider returned unexpected status",
			logger.String("phone", utils.MaskPhone(phone)),
			logger.Int("http_status", resp.StatusCode))
		return false, fmt.Errorf("sms provider returned http status %d", resp.StatusCode)
	}

	var body smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode sms provider response: %w", err)
	}

	if body.Status == "OK" || body.StatusCode == smsStatusOK {
		g.logger.Info("SMS sent",
			logger.String("phone", utils.MaskPhone(phone)))
		return true, nil
	}

	g.logger.Error("SMS provider rejected message",
		logger.String("phone", utils.MaskPhone(phone)),
		logger.String("status", body.Status),
		logger.Int("status_code", body.StatusCode),
		logger.String("status_text", body.StatusText))
	return false, nil
}

// LogSender writes codes to the log instead of delivering them
type LogSender struct {
	logger *logger.ZapLogger
}

// NewLogSender creates a test-mode sender
func NewLogSender(zapLogger *logger.ZapLogger) *LogSender {
	return &LogSender{logger: zapLogger}
}

// SendOTP logs the code and always reports delivery
func (s *LogSender) SendOTP(ctx context.Context, phone, code string) (bool, error) {
	s.logger.Warn("Verification code issued",
		logger.String("mode", "test"),
		logger.String("phone", phone),
		logger.String("code", code))
	return true, nil
}
