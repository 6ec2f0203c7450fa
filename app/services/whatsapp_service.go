package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const callMeBotEndpoint = "https://api.callmebot.com/whatsapp.php"

type WhatsAppConfig struct {
	Number       string
	APIKey       string
	StoreBaseURL string
	Locale       string
}

// WhatsAppService pushes a new-order alert to the store owner through the
// CallMeBot gateway.
type WhatsAppService struct {
	config WhatsAppConfig
	client *http.Client
}

func NewWhatsAppService(cfg WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *WhatsAppService) SendNewOrderAlert(orderID uint) error {
	text := s.alertText(orderID)

	endpoint := fmt.Sprintf("%s?phone=%s&text=%s&apikey=%s",
		callMeBotEndpoint,
		url.QueryEscape(s.config.Number),
		url.QueryEscape(text),
		url.QueryEscape(s.config.APIKey),
	)

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	log.Printf("✅ WhatsApp sent: %s", string(body))
	return nil
}

func (s *WhatsAppService) alertText(orderID uint) string {
	link := fmt.Sprintf("%s/admin/order/%d", s.config.StoreBaseURL, orderID)
	if s.config.Locale == "en" {
		return fmt.Sprintf("📦 A new order arrived at YAARASTORE!\n\n🔗 View the order: %s", link)
	}
	return fmt.Sprintf("📦 התקבלה הזמנה חדשה באתר YAARASTORE!\n\n🔗 לצפייה בהזמנה: %s", link)
}
