package review

import (
	"benkyo-engine/internal/models"
)

// GroupDueTasks partitions due tasks into the groups the review screen
// lists. Tasks whose session has a resolvable material group under
// "material:<id>" with the material's title; otherwise under
// "subject:<name>" with the subject as title — a dangling material
// reference degrades to the subject group rather than failing, since the
// reference is advisory. Groups appear in the order their key is first
// seen, so with due-date-ascending input the most overdue group is first.
// Every task lands in exactly one group.
func GroupDueTasks(details []models.ReviewTaskDetail) []models.TaskGroup {
	index := make(map[string]int, len(details))
	groups := make([]models.TaskGroup, 0)

	for _, d := range details {
		key, title := groupKey(d)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.TaskGroup{Key: key, Title: title})
		}
		groups[i].Count++
		groups[i].DueTasks = append(groups[i].DueTasks, d.Task)
	}
	return groups
}

func groupKey(d models.ReviewTaskDetail) (key, title string) {
	if d.Material != nil {
		return "material:" + d.Material.ID.String(), d.Material.Title
	}
	return "subject:" + d.Session.Subject, d.Session.Subject
}
