// Package main provides the entry point for the idcard CLI.
//
// idcard validates, decodes, upgrades, and synthesizes national
// identity-card numbers (Mainland China 15/18-digit, Hong Kong, Macau,
// Taiwan formats).
//
// Usage:
//
//	idcard validate <number>...
//	idcard validate --list <file>
//	idcard inspect <number>
//	idcard upgrade <15-digit-number>
//	idcard fake --region 3301 --min-year 1990 --max-year 2000
//
// See --help for all available options.
package main

// main is the entry point for idcard.
func main() {
	Execute()
}
