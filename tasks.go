package solvium

import "context"

// Shortcut methods mirroring the service's captcha types. Each one is a thin
// wrapper over Solve with the matching task variant and shares its contract:
// empty token with nil error when no solution was produced.

// Turnstile solves a Cloudflare Turnstile widget.
func (c *Client) Turnstile(ctx context.Context, sitekey, pageURL string) (string, error) {
	return c.Solve(ctx, TurnstileTask{SiteKey: sitekey, PageURL: pageURL})
}

// RecaptchaV3 solves a reCAPTCHA v3 check for the given action.
func (c *Client) RecaptchaV3(ctx context.Context, sitekey, pageURL, action string) (string, error) {
	return c.Solve(ctx, RecaptchaV3Task{SiteKey: sitekey, PageURL: pageURL, Action: action})
}

// RecaptchaV2 solves a reCAPTCHA v2 challenge. Set enterprise for the
// enterprise widget; proxyURL may be empty.
func (c *Client) RecaptchaV2(ctx context.Context, sitekey, pageURL, action string, enterprise bool, proxyURL string) (string, error) {
	return c.Solve(ctx, RecaptchaV2Task{
		SiteKey:    sitekey,
		PageURL:    pageURL,
		Action:     action,
		Enterprise: enterprise,
		Proxy:      proxyURL,
	})
}

// NoName solves the service's "noname" challenge type.
func (c *Client) NoName(ctx context.Context, sitekey, pageURL string) (string, error) {
	return c.Solve(ctx, NoNameTask{SiteKey: sitekey, PageURL: pageURL})
}

// Vercel solves a Vercel challenge from its token.
func (c *Client) Vercel(ctx context.Context, challengeToken string) (string, error) {
	return c.Solve(ctx, VercelTask{ChallengeToken: challengeToken})
}

// CFClearance obtains a cf_clearance cookie value. bodyB64 is the base64 of
// the challenge page fetched through proxyURL.
func (c *Client) CFClearance(ctx context.Context, pageURL, bodyB64, proxyURL string) (string, error) {
	return c.Solve(ctx, CloudflareClearanceTask{PageURL: pageURL, Body: bodyB64, Proxy: proxyURL})
}
