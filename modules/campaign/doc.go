// Package campaign assembles the HTTP surface of the campaign landing
// backend from the registration and content services.
package campaign
