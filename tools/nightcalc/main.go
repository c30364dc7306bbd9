// Command nightcalc - калькулятор баланса ночи: часы, расход энергии, подписи.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nightshift-server/internal/domain"
	"nightshift-server/internal/systems"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	out, err := run(os.Args[1], os.Args[2:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(cmd string, args []string) (string, error) {
	switch cmd {
	case "hour":
		if len(args) < 1 {
			return "", fmt.Errorf("Usage: nightcalc hour <elapsed> [length]")
		}
		elapsed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", fmt.Errorf("Invalid elapsed: %v", err)
		}
		length := domain.NightLengthSeconds
		if len(args) > 1 {
			if length, err = strconv.ParseFloat(args[1], 64); err != nil {
				return "", fmt.Errorf("Invalid length: %v", err)
			}
		}
		return hour(elapsed, length), nil

	case "power":
		if len(args) < 1 {
			return "", fmt.Errorf("Usage: nightcalc power <seconds> [controls...]")
		}
		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", fmt.Errorf("Invalid seconds: %v", err)
		}
		return power(seconds, args[1:])

	case "label":
		if len(args) < 1 {
			return "", fmt.Errorf("Usage: nightcalc label <hour>")
		}
		h, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("Invalid hour: %v", err)
		}
		return domain.FormatHour(h), nil
	}

	printHelp()
	return "", fmt.Errorf("unknown command %q", cmd)
}

func hour(elapsed, length float64) string {
	clock := systems.NewNightClock(length)
	h, survived := clock.Tick(systems.SanitizeDelta(elapsed))
	s := fmt.Sprintf("%s (hour %d, %.1fs left)", domain.FormatHour(h), h, clock.Remaining())
	if survived {
		s += " - night survived"
	}
	return s
}

// power прогоняет экономику с фиксированной конфигурацией защиты.
// Повтор контрола в списке ничего не меняет: он просто включен.
func power(seconds float64, controls []string) (string, error) {
	var d domain.DefenseConfig
	for _, name := range controls {
		c, err := domain.ParseControl(name)
		if err != nil {
			return "", fmt.Errorf("%w: %s", err, name)
		}
		if !d.Engaged(c) {
			d = d.Toggle(c)
		}
	}

	eco := systems.NewPowerEconomy(systems.DefaultDrainRates())
	left := eco.Tick(systems.SanitizeDelta(seconds), d)
	rate := eco.DrainRate(d)

	var b strings.Builder
	fmt.Fprintf(&b, "drain %.2f/s, power left %.2f (%s)", rate, left, domain.FormatPower(left))
	if rate > 0 {
		fmt.Fprintf(&b, ", full battery lasts %.0fs", domain.MaxPower/rate)
	}
	return b.String(), nil
}

func printHelp() {
	fmt.Println(`Night Calc - расчеты баланса ночи
Commands:
  hour <elapsed> [length]        - игровой час через elapsed секунд (длина ночи по умолчанию 120)
  power <seconds> [controls...]  - остаток энергии через seconds секунд
                                   controls: LEFT_DOOR RIGHT_DOOR LEFT_LIGHT RIGHT_LIGHT CAMERA
  label <hour>                   - подпись часа для HUD (0 -> 12 AM)`)
}
