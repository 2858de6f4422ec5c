package demo

import (
	"io"
	"strconv"
)

func init() {
	Register("conditions.if", conditionsIf)
	Register("conditions.else-if", conditionsElseIf)
	Register("conditions.short", conditionsShort)
	Register("conditions.logical", conditionsLogical)
	Register("conditions.switch", conditionsSwitch)
	Register("conditions.switch-multi", conditionsSwitchMulti)
	Register("conditions.switch-bare", conditionsSwitchBare)
	Register("conditions.type-switch", conditionsTypeSwitch)
	Register("conditions.fallthrough", conditionsFallthrough)
}

func conditionsIf(w io.Writer) {
	age := 20
	if age >= 18 {
		result(w, "age %d: adult", age)
	} else {
		result(w, "age %d: minor", age)
	}
}

func grade(score int) string {
	if score >= 90 {
		return "A"
	} else if score >= 80 {
		return "B"
	} else if score >= 70 {
		return "C"
	}
	return "F"
}

func conditionsElseIf(w io.Writer) {
	for _, score := range []int{95, 83, 71, 40} {
		result(w, "score %d → grade %s", score, grade(score))
	}
}

func conditionsShort(w io.Writer) {
	if n, err := strconv.Atoi("42"); err == nil {
		result(w, "parsed %d", n)
	}
	if _, err := strconv.Atoi("forty-two"); err != nil {
		result(w, "error: %v", err)
	}
}

func conditionsLogical(w io.Writer) {
	age, hasTicket := 25, true
	if age >= 18 && hasTicket {
		result(w, "entry allowed")
	}
	day := "Sunday"
	if day == "Saturday" || day == "Sunday" {
		result(w, "%s is a weekend day", day)
	}
}

func dayKind(day string) string {
	switch day {
	case "Saturday", "Sunday":
		return "weekend"
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday":
		return "weekday"
	default:
		return "unknown"
	}
}

func conditionsSwitch(w io.Writer) {
	switch day := 3; day {
	case 1:
		result(w, "Monday")
	case 2:
		result(w, "Tuesday")
	case 3:
		result(w, "day 3 is Wednesday")
	default:
		result(w, "another day")
	}
}

func conditionsSwitchMulti(w io.Writer) {
	for _, d := range []string{"Saturday", "Tuesday", "Someday"} {
		result(w, "%s → %s", d, dayKind(d))
	}
}

func conditionsSwitchBare(w io.Writer) {
	temp := 23
	switch {
	case temp < 0:
		result(w, "%d°C: freezing", temp)
	case temp < 20:
		result(w, "%d°C: cool", temp)
	default:
		result(w, "%d°C: warm", temp)
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case int:
		return "int " + strconv.Itoa(x)
	case string:
		return "string " + strconv.Quote(x)
	case bool:
		return "bool " + strconv.FormatBool(x)
	default:
		return "something else"
	}
}

func conditionsTypeSwitch(w io.Writer) {
	for _, v := range []any{7, "go", true, 2.5} {
		result(w, "%s", describe(v))
	}
}

func conditionsFallthrough(w io.Writer) {
	switch level := 1; level {
	case 1:
		result(w, "level 1 reached")
		fallthrough
	case 2:
		result(w, "level 2 reached (via fallthrough)")
	case 3:
		result(w, "level 3 reached")
	}
}
