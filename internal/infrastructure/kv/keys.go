package kv

import "fmt"

// Key layout. Ownership is encoded in the prefix: every entity key starts
// with the owning user's id, so prefix scans are confined to one account.
//
//	user:<userID>                       profile document
//	auth:email:<email>                  login credential
//	client:<userID>:<id>                client document
//	quotation:<userID>:<id>             quotation document
//	invoice:<userID>:<id>               invoice document
//	counter:invoice:<userID>:<year>     invoice sequence counter

func ProfileKey(userID string) string { return "user:" + userID }

func CredentialKey(email string) string { return "auth:email:" + email }

func ClientKey(userID, id string) string { return "client:" + userID + ":" + id }

func ClientPrefix(userID string) string { return "client:" + userID + ":" }

func QuotationKey(userID, id string) string { return "quotation:" + userID + ":" + id }

func QuotationPrefix(userID string) string { return "quotation:" + userID + ":" }

func InvoiceKey(userID, id string) string { return "invoice:" + userID + ":" + id }

func InvoicePrefix(userID string) string { return "invoice:" + userID + ":" }

func InvoiceCounterKey(userID string, year int) string {
	return fmt.Sprintf("counter:invoice:%s:%d", userID, year)
}
