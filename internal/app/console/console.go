// Package console is the line-oriented operator surface. All input parsing
// happens here; services receive structured arguments and sessions only.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"society-service/internal/domain/services/container"
	"society-service/internal/error/code"
)

const dateLayout = "2006-01-02"

// Console drives the interactive menus over the service container.
type Console struct {
	services *container.ServiceContainer
	in       *bufio.Reader
	out      io.Writer
	eof      bool
}

// New creates a console bound to the given input and output streams.
func New(services *container.ServiceContainer, in io.Reader, out io.Writer) *Console {
	return &Console{
		services: services,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run loops the main menu until the operator exits.
func (c *Console) Run() {
	for {
		c.printf("\n=== Main Menu ===\n")
		c.printf("1. Resident Register\n")
		c.printf("2. Resident Login\n")
		c.printf("3. Staff Login\n")
		c.printf("4. Staff Registration\n")
		c.printf("5. Admin Login\n")
		c.printf("6. Exit\n")

		choice := c.prompt("Choose an option (1-6): ")
		if choice == "" && c.eof {
			c.printf("Exiting the system.\n")
			return
		}
		switch choice {
		case "1":
			c.registerResident()
		case "2":
			c.residentLogin()
		case "3":
			c.staffLogin()
		case "4":
			c.registerStaff()
		case "5":
			c.adminLogin()
		case "6":
			c.printf("Exiting the system.\n")
			return
		default:
			c.printf("Invalid option. Please try again.\n")
		}
	}
}

func (c *Console) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.out, format, v...)
}

// prompt prints the label and returns one trimmed input line. Once input is
// exhausted it marks the console so the menu loops wind down instead of
// re-asking forever.
func (c *Console) prompt(label string) string {
	c.printf("%s", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.eof = true
	}
	return strings.TrimSpace(line)
}

// promptRequired re-asks until the operator enters a non-empty value.
func (c *Console) promptRequired(label string) string {
	for {
		if value := c.prompt(label); value != "" {
			return value
		}
		if c.eof {
			return ""
		}
		c.printf("This field is required. Please enter a value.\n")
	}
}

// promptInt re-asks until the operator enters a valid number.
func (c *Console) promptInt(label string) int {
	for {
		value, err := strconv.Atoi(c.prompt(label))
		if err == nil {
			return value
		}
		if c.eof {
			return 0
		}
		c.printf("Please enter a valid number.\n")
	}
}

// promptUint re-asks until the operator enters a non-negative id.
func (c *Console) promptUint(label string) uint {
	for {
		value, err := strconv.Atoi(c.prompt(label))
		if err == nil && value >= 0 {
			return uint(value)
		}
		if c.eof {
			return 0
		}
		c.printf("Please enter a valid non-negative number.\n")
	}
}

// promptDate re-asks until the operator enters a YYYY-MM-DD date.
func (c *Console) promptDate(label string) time.Time {
	for {
		value, err := time.Parse(dateLayout, c.prompt(label))
		if err == nil {
			return value
		}
		if c.eof {
			return time.Time{}
		}
		c.printf("Invalid date format. Use YYYY-MM-DD.\n")
	}
}

// reportError renders a typed failure with its kind; storage detail stays in
// the logs.
func (c *Console) reportError(err error) {
	c.printf("[%s] %s\n", code.KindOf(err), err.Error())
}
