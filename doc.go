// Package lettr provides a Go client SDK for the Lettr transactional
// email API.
//
// Create a client with your API key, then use the resource services
// exposed as fields:
//
//	client, err := lettr.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	email := lettr.NewEmail("sender@example.com", []string{"user@example.com"}, "Hello!",
//	    lettr.WithHTML("<h1>Hello World!</h1>"),
//	)
//
//	resp, err := client.Emails.Send(ctx, email)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Request ID:", resp.RequestID)
//
// Failed operations return exactly one of the error types APIError,
// ValidationError, NetworkError, or DecodeError; use errors.As to branch
// on the variant, or Error() for a displayable message.
package lettr
