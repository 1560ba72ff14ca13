package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns nil when no API key is
// configured so newsletter signups still succeed without sending email.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ RESEND_API_KEY not set, newsletter welcome emails disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@smartstorefront.shop" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendNewsletterWelcomeEmail sends the welcome email after a newsletter signup
func (r *ResendClient) SendNewsletterWelcomeEmail(email string) error {
	htmlBody := r.buildNewsletterWelcomeHTML()

	// Prepare request payload
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      email,
		"subject": "Welcome to the SmartStoreFront newsletter",
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	// Make request to Resend API
	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check status code
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] newsletter welcome email sent to %s", email)
	return nil
}

// buildNewsletterWelcomeHTML creates the HTML body for the welcome email with inline styles
func (r *ResendClient) buildNewsletterWelcomeHTML() string {
	return `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome to SmartStoreFront</title>
  </head>
  <body style="margin: 0; padding: 0; box-sizing: border-box; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen', 'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="background-color: #ffffff; padding: 60px 20px;">
      <div style="max-width: 600px; margin: 0 auto; background: #ffffff;">
        <!-- Header -->
        <div style="padding: 0 0 80px 0; text-align: left; position: relative;">
          <div style="font-size: 24px; font-weight: 700; color: #1a1a1a; letter-spacing: -0.3px; margin-bottom: 0;">SmartStoreFront</div>
        </div>

        <!-- Content -->
        <div style="padding: 0;">
          <p style="font-size: 36px; font-weight: 700; color: #000000; margin-bottom: 24px; letter-spacing: -0.8px; line-height: 1.2; margin-top: 0;">You're on the list</p>

          <p style="font-size: 17px; color: #626262; line-height: 1.8; margin-bottom: 40px; margin-top: 0;">
            Thanks for subscribing. You'll be the first to hear about new arrivals, trending products, and exclusive deals.
          </p>

          <div style="margin: 40px 0;">
            <div style="font-size: 12px; font-weight: 600; color: #626262; text-transform: uppercase; letter-spacing: 0.8px; margin-bottom: 16px;">What To Expect</div>
            <div style="font-size: 17px; color: #1a1a1a; line-height: 1.8;">
              A short email whenever something worth your attention lands in the store. No spam, ever.
            </div>
          </div>

          <hr style="border: 0; height: 1px; background: #e5e5e5; margin: 60px 0;" />

          <p style="font-size: 13px; color: #626262; line-height: 1.7; margin-top: 40px;">
            If you didn't sign up for this newsletter, feel free to disregard this email.
          </p>
        </div>

        <!-- Footer -->
        <div style="padding: 40px 0 0 0; text-align: left;">
          <p style="font-size: 13px; color: #626262; line-height: 1.8; margin-bottom: 8px; margin-top: 0;">© 2026 SmartStoreFront. All rights reserved.</p>
          <p style="font-size: 13px; color: #626262; line-height: 1.8; margin-top: 0;">
            Questions?
            <a href="mailto:support@smartstorefront.shop" style="color: #0066cc; text-decoration: none; font-size: 13px; font-weight: 500;">Contact support</a>
          </p>
        </div>
      </div>
    </div>
  </body>
</html>`
}
