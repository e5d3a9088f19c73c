// Package page assembles the home page from its independently resolved listings.
package page
