package console

import (
	"fmt"
	"text/tabwriter"

	"society-service/internal/domain/services"
)

// registerResident runs the resident registration form.
func (c *Console) registerResident() {
	c.printf("\nResident Registration\n")
	input := services.RegisterResidentInput{
		Name:            c.promptRequired("Name: "),
		FlatNo:          c.promptRequired("Flat Number: "),
		Phone:           c.promptRequired("Phone Number: "),
		Age:             c.promptInt("Age: "),
		NumberOfMembers: c.promptInt("Number of Members in Flat: "),
		Gender:          c.promptRequired("Gender: "),
		Designation:     c.promptRequired("Designation: "),
	}

	resident, err := c.services.Auth().RegisterResident(input)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Registered successfully! Your resident ID is: %s\n", resident.ResidentID)
	c.printf("Please wait for admin approval.\n")
}

// residentLogin authenticates a resident and enters the resident menu.
func (c *Console) residentLogin() {
	flatNo := c.prompt("Enter your flat number: ")
	residentID := c.prompt("Enter your resident ID: ")

	session, err := c.services.Auth().LoginResident(flatNo, residentID)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Welcome, %s!\n", session.Name)
	c.residentMenu(session)
}

func (c *Console) residentMenu(session *services.Session) {
	for {
		c.printf("\n--- Resident Menu ---\n")
		c.printf("1. Raise Complaint\n")
		c.printf("2. Skip Delivery\n")
		c.printf("3. View My Complaints\n")
		c.printf("4. Book Amenity\n")
		c.printf("5. View My Bookings\n")
		c.printf("6. Participate in Poll\n")
		c.printf("7. View Announcements\n")
		c.printf("8. Log Out\n")

		choice := c.prompt("Choose an option (1-8): ")
		if choice == "" && c.eof {
			return
		}
		switch choice {
		case "1":
			c.raiseComplaint(session)
		case "2":
			c.skipDelivery(session)
		case "3":
			c.viewMyComplaints(session)
		case "4":
			c.bookAmenity(session)
		case "5":
			c.viewMyBookings(session)
		case "6":
			c.participatePoll(session)
		case "7":
			c.viewAnnouncements()
		case "8":
			c.printf("Logged out successfully.\n")
			return
		default:
			c.printf("Invalid option. Please try again.\n")
		}
	}
}

func (c *Console) raiseComplaint(session *services.Session) {
	flatNo := c.prompt("Enter the flat number for complaint: ")
	category := c.promptRequired("Category: ")
	description := c.promptRequired("Description: ")
	date := c.promptDate("Complaint Date (YYYY-MM-DD): ")

	if _, err := c.services.Complaints().Raise(session, flatNo, category, description, date); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Complaint submitted successfully!\n")
}

func (c *Console) viewMyComplaints(session *services.Session) {
	complaints, err := c.services.Complaints().ListByFlat(session.FlatNo)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\n--- Complaints for Flat %s ---\n", session.FlatNo)
	if len(complaints) == 0 {
		c.printf("No complaints found.\n")
		return
	}
	for _, complaint := range complaints {
		c.printf("Date: %s | Category: %s | Issue: %s | Status: %s\n",
			complaint.Date.Format(dateLayout), complaint.Category, complaint.Description, complaint.Status)
	}
}

func (c *Console) skipDelivery(session *services.Session) {
	flatNo := c.prompt("Enter your flat number: ")
	item := c.promptRequired("Item (milk/water/newspaper): ")
	skipDate := c.promptDate("Skip Date (YYYY-MM-DD): ")

	if _, err := c.services.Deliveries().SkipDelivery(session, flatNo, item, skipDate); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Delivery skipped successfully.\n")
}

func (c *Console) bookAmenity(session *services.Session) {
	amenities := c.services.Bookings().Amenities()
	c.printf("\nAvailable Amenities:\n")
	for i, amenity := range amenities {
		c.printf("%d. %s\n", i+1, amenity)
	}

	choice := c.promptInt("Select an amenity by number: ")
	if choice < 1 || choice > len(amenities) {
		c.printf("Invalid choice.\n")
		return
	}

	date := c.promptDate("Booking Date (YYYY-MM-DD): ")
	timeSlot := c.promptRequired("Time (e.g. 18:00): ")

	booking, err := c.services.Bookings().Book(session, amenities[choice-1], date, timeSlot)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("%s booking request submitted.\n", booking.Amenity)
	c.printf("Your Booking ID: %d\n", booking.ID)
}

func (c *Console) viewMyBookings(session *services.Session) {
	bookings, err := c.services.Bookings().ListByResident(session.ResidentID)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(bookings) == 0 {
		c.printf("No bookings found.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAmenity\tDate\tTime\tStatus")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Amenity, b.Date.Format(dateLayout), b.TimeSlot, b.Status)
	}
	_ = w.Flush()
}

func (c *Console) participatePoll(session *services.Session) {
	polls, err := c.services.Polls().ListOpen()
	if err != nil {
		c.reportError(err)
		return
	}
	if len(polls) == 0 {
		c.printf("No active polls available.\n")
		return
	}

	c.printf("\nOpen Polls:\n")
	for _, poll := range polls {
		c.printf("%d. %s\n", poll.ID, poll.Question)
	}
	pollID := c.promptUint("Enter poll id: ")

	poll, err := c.services.Polls().GetOpen(pollID)
	if err != nil {
		c.reportError(err)
		return
	}

	voted, err := c.services.Polls().HasVoted(session.FlatNo, poll.ID)
	if err != nil {
		c.reportError(err)
		return
	}
	if voted {
		c.printf("You have already voted in this poll.\n")
		return
	}

	c.printf("\nPoll: %s\n", poll.Question)
	for _, option := range poll.Options {
		c.printf("%d. %s\n", option.OptionIndex, option.Label)
	}

	choice := c.promptInt("Enter your choice number: ")
	if err := c.services.Polls().Vote(session.FlatNo, poll.ID, choice); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Your vote has been recorded. Thank you!\n")
}

func (c *Console) viewAnnouncements() {
	announcements, err := c.services.Announcements().List()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nAnnouncements\n")
	if len(announcements) == 0 {
		c.printf("No announcements available.\n")
		return
	}
	for _, a := range announcements {
		c.printf("\n-------------------------\n")
		c.printf("Date: %s\n", a.CreatedAt.Format("2006-01-02 15:04"))
		c.printf("Message: %s\n", a.Message)
	}
}
