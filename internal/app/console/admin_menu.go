package console

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// adminLogin authenticates the administrator and enters the admin menu.
func (c *Console) adminLogin() {
	c.printf("\n--- Admin Login ---\n")
	username := c.prompt("Enter admin username: ")
	password := c.prompt("Enter admin password: ")

	if _, err := c.services.Auth().LoginAdmin(username, password); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Login successful.\n")
	c.adminMenu()
}

func (c *Console) adminMenu() {
	for {
		c.printf("\n=== Admin Menu ===\n")
		c.printf("1. List pending residents\n")
		c.printf("2. Approve resident by ID\n")
		c.printf("3. List pending staff\n")
		c.printf("4. Approve staff by username\n")
		c.printf("5. Assign common task\n")
		c.printf("6. Create poll\n")
		c.printf("7. Close poll\n")
		c.printf("8. Delete all polls\n")
		c.printf("9. List pending amenity bookings\n")
		c.printf("10. Decide booking (approve/reject)\n")
		c.printf("11. View and assign complaints\n")
		c.printf("12. Post announcement\n")
		c.printf("13. Delete announcement\n")
		c.printf("14. View skips by date/service\n")
		c.printf("15. View poll summary\n")
		c.printf("16. Back\n")

		choice := c.prompt("Choose: ")
		if choice == "" && c.eof {
			return
		}
		switch choice {
		case "1":
			c.listPendingResidents()
		case "2":
			c.approveResident()
		case "3":
			c.listPendingStaff()
		case "4":
			c.approveStaff()
		case "5":
			c.assignCommonTask()
		case "6":
			c.createPoll()
		case "7":
			c.closePoll()
		case "8":
			c.deleteAllPolls()
		case "9":
			c.listPendingBookings()
		case "10":
			c.decideBooking()
		case "11":
			c.complaintManagement()
		case "12":
			c.postAnnouncement()
		case "13":
			c.deleteAnnouncement()
		case "14":
			c.viewSkipsByDate()
		case "15":
			c.viewPollSummary()
		case "16":
			return
		default:
			c.printf("Invalid choice.\n")
		}
	}
}

func (c *Console) listPendingResidents() {
	residents, err := c.services.Residents().ListPending()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nPending Residents:\n")
	if len(residents) == 0 {
		c.printf("No pending residents.\n")
		return
	}
	for _, r := range residents {
		c.printf("\nID: %s\nName: %s\nFlat No: %s\nPhone: %s\nAge: %d\nMembers in Flat: %d\nGender: %s\nDesignation: %s\n",
			r.ResidentID, r.Name, r.FlatNo, r.Phone, r.Age, r.NumberOfMembers, r.Gender, r.Designation)
	}
}

func (c *Console) approveResident() {
	residentID := c.promptRequired("Resident ID: ")
	if err := c.services.Residents().ApproveByResidentID(residentID); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Approved resident %s\n", residentID)
}

func (c *Console) listPendingStaff() {
	staff, err := c.services.Staff().ListPending()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nPending Staff:\n")
	if len(staff) == 0 {
		c.printf("No pending staff.\n")
		return
	}
	for _, member := range staff {
		c.printf("- %s (%s)\n", member.Username, member.Role)
	}
}

func (c *Console) approveStaff() {
	username := c.promptRequired("Staff username: ")
	if err := c.services.Staff().ApproveByUsername(username); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Approved staff %s\n", username)
}

func (c *Console) assignCommonTask() {
	c.printf("\n--- Assign Common Society Task ---\n")
	taskName := c.promptRequired("Enter task name: ")
	description := c.prompt("Enter task description: ")
	staffName := c.promptRequired("Assign to staff name: ")

	if _, err := c.services.Tasks().CreateCommonTask(taskName, description, staffName); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Common task '%s' assigned to %s successfully!\n", taskName, staffName)
}

func (c *Console) createPoll() {
	c.printf("\nCreate Poll\n")
	question := c.promptRequired("Enter the poll question: ")
	options := strings.Split(c.promptRequired("Enter options (comma separated): "), ",")

	if _, err := c.services.Polls().Create(question, options); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Poll created.\n")
}

func (c *Console) closePoll() {
	pollID := c.promptUint("Enter poll id to close: ")
	if err := c.services.Polls().Close(pollID); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Poll closed.\n")
}

func (c *Console) deleteAllPolls() {
	if strings.ToLower(c.prompt("Are you sure you want to delete ALL polls? (yes/no): ")) != "yes" {
		c.printf("Cancelled. Polls were not deleted.\n")
		return
	}
	if err := c.services.Polls().DeleteAll(); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Deleted all polls successfully.\n")
}

func (c *Console) listPendingBookings() {
	bookings, err := c.services.Bookings().ListPending()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nPending Amenity Bookings:\n")
	if len(bookings) == 0 {
		c.printf("No pending bookings.\n")
		return
	}
	for _, b := range bookings {
		c.printf("- id:%d | amenity:%s | date:%s %s | resident:%s\n",
			b.ID, b.Amenity, b.Date.Format(dateLayout), b.TimeSlot, b.ResidentID)
	}
}

func (c *Console) decideBooking() {
	c.listPendingBookings()
	bookingID := c.promptUint("Enter booking id: ")
	decision := strings.ToLower(c.prompt("Approve or Reject (a/r): "))
	if decision != "a" && decision != "r" {
		c.printf("Invalid choice.\n")
		return
	}

	if err := c.services.Bookings().Decide(bookingID, decision == "a"); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Booking status updated.\n")
}

func (c *Console) complaintManagement() {
	for {
		c.printf("\n=== Complaint Management Menu ===\n")
		c.printf("1. View and Assign Complaints\n")
		c.printf("2. Remove a Task\n")
		c.printf("3. Back to Admin Menu\n")

		choice := c.prompt("Enter your choice: ")
		if choice == "" && c.eof {
			return
		}
		switch choice {
		case "1":
			c.assignComplaint()
		case "2":
			c.removeTask()
		case "3":
			c.printf("Returning to Admin Menu...\n")
			return
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) assignComplaint() {
	complaints, err := c.services.Complaints().ListAll()
	if err != nil {
		c.reportError(err)
		return
	}
	if len(complaints) == 0 {
		c.printf("No complaints found.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFlat No\tCategory\tDescription\tStatus")
	for _, complaint := range complaints {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			complaint.ID, complaint.FlatNo, complaint.Category, complaint.Description, complaint.Status)
	}
	_ = w.Flush()

	input := c.prompt("\nEnter complaint id to assign (or 'q' to cancel): ")
	if strings.ToLower(input) == "q" {
		return
	}
	complaintID := 0
	if _, err := fmt.Sscanf(input, "%d", &complaintID); err != nil || complaintID < 0 {
		c.printf("Invalid choice.\n")
		return
	}

	assignedTo := c.promptRequired("Assign to (staff username): ")
	dueDate := c.promptDate("Due Date (YYYY-MM-DD): ")

	if _, err := c.services.Complaints().Assign(uint(complaintID), assignedTo, dueDate); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Task assigned.\n")
}

func (c *Console) removeTask() {
	tasks, err := c.services.Tasks().ListAll()
	if err != nil {
		c.reportError(err)
		return
	}
	if len(tasks) == 0 {
		c.printf("No tasks found to remove.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Task ID\tFlat No\tIssue\tAssigned To\tStatus")
	for _, task := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			task.ID, task.FlatNo, task.Issue, task.AssignedTo, task.Status)
	}
	_ = w.Flush()

	input := c.prompt("\nEnter task id to remove (or 'q' to cancel): ")
	if strings.ToLower(input) == "q" {
		return
	}
	taskID := 0
	if _, err := fmt.Sscanf(input, "%d", &taskID); err != nil || taskID < 0 {
		c.printf("Invalid choice.\n")
		return
	}

	if err := c.services.Tasks().Delete(uint(taskID)); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Task removed successfully.\n")
}

func (c *Console) postAnnouncement() {
	c.printf("\nPost Announcement\n")
	message := c.promptRequired("Message: ")
	if _, err := c.services.Announcements().Post(message); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Announcement posted.\n")
}

func (c *Console) deleteAnnouncement() {
	c.printf("\nDelete an Announcement by ID\n")
	announcements, err := c.services.Announcements().ListRecent(10)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(announcements) == 0 {
		c.printf("No announcements to delete.\n")
		return
	}
	for _, a := range announcements {
		c.printf("- ID: %d | Message: %s\n", a.ID, a.Message)
	}

	id := c.promptUint("\nEnter the ID to delete: ")
	if err := c.services.Announcements().Delete(id); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Announcement deleted.\n")
}

func (c *Console) viewSkipsByDate() {
	date := c.promptDate("Enter date (YYYY-MM-DD): ")
	item := strings.ToLower(c.promptRequired("Service (milk/water/newspaper): "))

	flats, err := c.services.Deliveries().SkipsOn(date, item)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nSkips for %s on %s:\n", item, date.Format(dateLayout))
	if len(flats) == 0 {
		c.printf("No skips.\n")
		return
	}
	for _, flat := range flats {
		c.printf("- Flat %s\n", flat)
	}
}

func (c *Console) viewPollSummary() {
	summaries, err := c.services.Polls().Summaries()
	if err != nil {
		c.reportError(err)
		return
	}
	if len(summaries) == 0 {
		c.printf("\nNo polls found.\n")
		return
	}
	c.printf("\n=== Poll Summary ===\n")
	for _, summary := range summaries {
		c.printf("\nQuestion: %s (%s)\n", summary.Question, summary.Status)
		for _, option := range summary.Options {
			c.printf("  %s: %d\n", option, summary.Tally[option])
		}
		c.printf("  Total votes: %d\n", summary.TotalVotes)
	}
}
