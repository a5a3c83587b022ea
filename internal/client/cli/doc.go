// Package cli is the line-oriented front-end used when no full-screen
// terminal is available.
//
// It asks for the registration fields one by one, re-prompting until the
// registration is accepted or the user types "cancel", and then runs a single
// chat window on standard input and output. Lines are sent as messages;
// lines starting with "/" are commands:
//
//	/search <keyword>  list messages containing keyword
//	/help              show commands and registration rules
//	/quit | /exit      leave the program
//	//text             send "/text" as a message
//
// Acknowledgments are printed as they arrive. The window is closed when
// input ends and no acknowledgment is outstanding.
package cli
