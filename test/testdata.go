// Package test holds end-to-end tests and shared fixtures for qrstack.
package test

// ReferralCSV mimics a real referral export: header row, mixed column
// layouts, quoted values with embedded commas, and one plain URL row.
const ReferralCSV = `Referral URL,Owner,Clicks
referral?code=ABC123,Jane,42
"Smith, John",referral?code=DEF456,7
https://example.com/direct,n/a,0
just-some-text,n/a,0
`

// PastedLinks mimics multi-line pasted input with padding and blanks.
const PastedLinks = `
https://example.com/one

example.com/two
javascript:alert(1)
https://203.0.113.5/metrics
`
