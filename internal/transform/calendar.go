package transform

import "time"

// monthNames maps month numbers to the fixed table labels
var monthNames = map[int]string{
	1: "JAN", 2: "FEB", 3: "MAR", 4: "APR",
	5: "MAY", 6: "JUN", 7: "JUL", 8: "AUG",
	9: "SEP", 10: "OCT", 11: "NOV", 12: "DEC",
}

// weekdayNames maps Monday-based weekday numbers to names
var weekdayNames = map[int]string{
	0: "Monday", 1: "Tuesday", 2: "Wednesday",
	3: "Thursday", 4: "Friday", 5: "Saturday",
	6: "Sunday",
}

// MonthName returns the fixed label for a month number
func MonthName(month int) string {
	return monthNames[month]
}

// WeekdayNum returns the Monday-based weekday number of t
func WeekdayNum(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName returns the name for a Monday-based weekday number
func WeekdayName(num int) string {
	return weekdayNames[num]
}
