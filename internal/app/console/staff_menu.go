package console

import (
	"time"

	"society-service/internal/domain/models"
	"society-service/internal/domain/services"
)

// today returns the current day for roster and skip views.
func today() time.Time {
	return time.Now()
}

// registerStaff runs the staff registration form.
func (c *Console) registerStaff() {
	c.printf("\n--- Staff Registration ---\n")
	username := c.promptRequired("Enter staff username: ")
	password := c.promptRequired("Enter password: ")
	role := c.promptRequired("Enter role (delivery/maintenance/security): ")

	staff, err := c.services.Auth().RegisterStaff(username, password, role)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Registered successfully: %s (%s)\n", staff.Username, staff.Role)
	c.printf("Awaiting admin approval.\n")
}

// staffLogin authenticates a staff member and routes to the role menu.
func (c *Console) staffLogin() {
	c.printf("\n--- Staff Login ---\n")
	username := c.prompt("Enter staff username: ")
	password := c.prompt("Enter staff password: ")

	session, err := c.services.Auth().LoginStaff(username, password)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Login successful! Welcome %s (%s)\n", session.Username, session.Role)

	switch session.Role {
	case models.RoleDelivery:
		c.deliveryMenu(session)
	case models.RoleMaintenance:
		c.maintenanceMenu(session)
	case models.RoleSecurity:
		c.printf("Security module not implemented yet.\n")
	default:
		c.printf("Unknown staff role.\n")
	}
}

func (c *Console) deliveryMenu(session *services.Session) {
	for {
		c.printf("\n--- Delivery Staff Menu ---\n")
		c.printf("1. View today's full delivery list\n")
		c.printf("2. View skipped deliveries\n")
		c.printf("3. Logout\n")

		choice := c.prompt("Enter choice: ")
		if choice == "" && c.eof {
			return
		}
		switch choice {
		case "1":
			item := c.promptRequired("Enter service (milk/water/newspaper): ")
			c.viewDeliveryRoster(item)
		case "2":
			item := c.promptRequired("Enter service (milk/water/newspaper): ")
			c.viewSkippedDeliveries(item)
		case "3":
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice. Try again.\n")
		}
	}
}

func (c *Console) viewDeliveryRoster(item string) {
	day := today()
	roster, err := c.services.Deliveries().DeliveryRoster(day, item)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nDelivery list for %s - %s:\n", item, day.Format(dateLayout))
	if len(roster) == 0 {
		c.printf("No deliveries due.\n")
		return
	}
	for _, entry := range roster {
		c.printf("Flat %s - %s\n", entry.FlatNo, entry.Name)
	}
}

func (c *Console) viewSkippedDeliveries(item string) {
	day := today()
	flats, err := c.services.Deliveries().SkipsOn(day, item)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nSkipped %s deliveries for %s:\n", item, day.Format(dateLayout))
	if len(flats) == 0 {
		c.printf("No skips today.\n")
		return
	}
	for _, flat := range flats {
		c.printf("Flat %s\n", flat)
	}
}

func (c *Console) maintenanceMenu(session *services.Session) {
	for {
		c.printf("\n--- Maintenance Staff Menu ---\n")
		c.printf("1. View Common Tasks\n")
		c.printf("2. View Assigned Tasks\n")
		c.printf("3. Update Task Status\n")
		c.printf("4. View Complaints By Date\n")
		c.printf("5. Update Complaint Status\n")
		c.printf("6. Update Common Task Status\n")
		c.printf("7. Logout\n")

		choice := c.prompt("Enter your choice: ")
		if choice == "" && c.eof {
			return
		}
		switch choice {
		case "1":
			c.viewCommonTasks()
		case "2":
			c.viewAssignedTasks(session)
		case "3":
			c.updateTaskStatus()
		case "4":
			date := c.promptDate("Enter date (YYYY-MM-DD): ")
			c.viewComplaintsByDate(date)
		case "5":
			c.updateComplaintStatus()
		case "6":
			c.updateCommonTaskStatus(session)
		case "7":
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice, try again.\n")
		}
	}
}

func (c *Console) viewCommonTasks() {
	tasks, err := c.services.Tasks().ListCommon()
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\n--- Common Society Maintenance Tasks ---\n")
	if len(tasks) == 0 {
		c.printf("No common tasks found.\n")
		return
	}
	for _, task := range tasks {
		c.printf("Task: %s | Description: %s | Status: %s | Created At: %s\n",
			task.TaskName, task.Issue, task.Status, task.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (c *Console) viewAssignedTasks(session *services.Session) {
	tasks, err := c.services.Tasks().ListAssignedTo(session.Username)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\nMaintenance Tasks assigned to: %s\n", session.Username)
	if len(tasks) == 0 {
		c.printf("No maintenance tasks found.\n")
		return
	}
	for _, task := range tasks {
		c.printf("\n-----------------------------\n")
		c.printf("Task ID     : %d\n", task.ID)
		c.printf("Flat No     : %s\n", task.FlatNo)
		c.printf("Issue       : %s\n", task.Issue)
		if task.DueDate != nil {
			c.printf("Due Date    : %s\n", task.DueDate.Format(dateLayout))
		}
		c.printf("Status      : %s\n", task.Status)
	}
}

func (c *Console) updateTaskStatus() {
	taskID := c.promptUint("Enter task id: ")
	status := c.promptRequired("Enter new status (Pending/In Progress/Completed): ")

	if err := c.services.Tasks().UpdateStatus(taskID, status); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Task %d updated to status '%s'.\n", taskID, status)
}

func (c *Console) viewComplaintsByDate(day time.Time) {
	complaints, err := c.services.Complaints().ListByDate(day)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("\n--- Complaints on %s ---\n", day.Format(dateLayout))
	if len(complaints) == 0 {
		c.printf("No complaints found on this date.\n")
		return
	}
	for _, complaint := range complaints {
		c.printf("Flat: %s | Category: %s | Issue: %s | Status: %s\n",
			complaint.FlatNo, complaint.Category, complaint.Description, complaint.Status)
	}
}

func (c *Console) updateComplaintStatus() {
	flatNo := c.promptRequired("Enter Flat No of the complaint: ")
	date := c.promptDate("Enter Date of complaint (YYYY-MM-DD): ")
	status := c.promptRequired("Enter new status (Pending/In Progress/Resolved): ")

	complaint, err := c.services.Complaints().UpdateStatusByFlatAndDate(flatNo, date, status)
	if err != nil {
		c.reportError(err)
		return
	}
	c.printf("Complaint status updated to '%s'\n", complaint.Status)
}

func (c *Console) updateCommonTaskStatus(session *services.Session) {
	taskName := c.promptRequired("Enter the task name: ")
	status := c.promptRequired("Enter the new status (Pending/In Progress/Completed): ")

	if err := c.services.Tasks().UpdateCommonStatus(taskName, session.Username, status); err != nil {
		c.reportError(err)
		return
	}
	c.printf("Task '%s' updated to %s\n", taskName, status)
}
