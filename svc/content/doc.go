// Package content proxies the read-only CMS content of the campaign
// landing pages: the page meta data, the banner and each funnel's
// sections. Responses are cached for a revalidation interval in memory or
// in Redis; the upstream gateway itself never caches.
package content
