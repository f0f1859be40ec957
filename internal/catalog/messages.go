package catalog

import "fmt"

// User-facing messages shared by every shell.
const (
	MessageNoBooks   = "No books found."
	MessageNoMatches = "No matching books found."
)

func AddedMessage(title string) string {
	return fmt.Sprintf("'%s' added successfully!", title)
}

// RemovedMessage is shown whether or not a record matched.
func RemovedMessage(title string) string {
	return fmt.Sprintf("'%s' removed successfully!", title)
}
