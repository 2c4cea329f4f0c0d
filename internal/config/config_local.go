//go:build !gcloud

package config

// Validate is permissive locally; without a tasks service URL the refresh
// queue is simply disabled.
func (c *RefreshQueueConfig) Validate() error {
	return nil
}
