package expr

import (
	"fmt"
	"strconv"

	"github.com/yacobolo/cssmixin"
)

// builtins maps the helper names used in stylesheet templates to the
// library. Media helpers are added per breakpoint by NewEvaluator.
var builtins = map[string]helperFunc{
	"addPixel": func(_ *Evaluator, a *arguments) (string, error) {
		if err := a.max(1); err != nil {
			return "", err
		}
		d, err := a.dimension(0)
		if err != nil {
			return "", err
		}
		return cssmixin.AddPixel(d), nil
	},
	"percentage": func(_ *Evaluator, a *arguments) (string, error) {
		part, whole, err := twoNumbers(a)
		if err != nil {
			return "", err
		}
		return cssmixin.Percentage(part, whole), nil
	},
	"vwsp": func(e *Evaluator, a *arguments) (string, error) {
		n, err := oneNumber(a)
		if err != nil {
			return "", err
		}
		return e.mixin.VWSP(n), nil
	},
	"vwpc": func(e *Evaluator, a *arguments) (string, error) {
		n, err := oneNumber(a)
		if err != nil {
			return "", err
		}
		return e.mixin.VWPC(n), nil
	},
	"size":             evalSize,
	"contentCentering": evalContentCentering,
	"centering":        evalCentering,
	"lineHeight": func(_ *Evaluator, a *arguments) (string, error) {
		fontSize, lineHeight, err := twoNumbers(a)
		if err != nil {
			return "", err
		}
		return cssmixin.LineHeight(fontSize, lineHeight).String(), nil
	},
	"letterSpacing": func(_ *Evaluator, a *arguments) (string, error) {
		n, err := oneNumber(a)
		if err != nil {
			return "", err
		}
		return cssmixin.LetterSpacing(n).String(), nil
	},
	"fontPixel": fontHelper(cssmixin.FontPixel),
	"fontRem":   fontHelper(cssmixin.FontRem),
	"fontVW": func(e *Evaluator, a *arguments) (string, error) {
		return fontHelper(e.mixin.FontVW)(e, a)
	},
	"smallText": func(_ *Evaluator, a *arguments) (string, error) {
		n, err := oneNumber(a)
		if err != nil {
			return "", err
		}
		return cssmixin.SmallText(n).String(), nil
	},
	"textReplace": func(_ *Evaluator, a *arguments) (string, error) {
		if err := a.max(0); err != nil {
			return "", err
		}
		return cssmixin.TextReplace().String(), nil
	},
	"bgImg":         evalBgImg,
	"bgImgMultiple": evalBgImgMultiple,
	"toggleDisplay": evalToggleDisplay,
}

func oneNumber(a *arguments) (float64, error) {
	if err := a.max(1); err != nil {
		return 0, err
	}
	return a.number(0)
}

func twoNumbers(a *arguments) (float64, float64, error) {
	if err := a.max(2); err != nil {
		return 0, 0, err
	}
	x, err := a.number(0)
	if err != nil {
		return 0, 0, err
	}
	y, err := a.number(1)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// size(width, height = width)
func evalSize(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(2); err != nil {
		return "", err
	}
	w, err := a.dimension(0)
	if err != nil {
		return "", err
	}
	if !a.present(1) {
		return cssmixin.Square(w).String(), nil
	}
	h, err := a.dimension(1)
	if err != nil {
		return "", err
	}
	return cssmixin.Size(w, h).String(), nil
}

func evalContentCentering(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(1); err != nil {
		return "", err
	}
	w, err := a.dimension(0)
	if err != nil {
		return "", err
	}
	return cssmixin.ContentCentering(w).String(), nil
}

// centering(width?, height = width, {type: 'absolute' | 'translate'}?)
//
// A width selects fixed centering. An omitted height copies the width; an
// explicit null height reads as 0.
func evalCentering(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(3); err != nil {
		return "", err
	}

	// A falsy width ('' or 0) falls through to the {type} form.
	if a.get(0).Truthy() {
		width, err := sizeLiteral(a, 0)
		if err != nil {
			return "", err
		}
		height := width
		if a.present(1) {
			if !a.get(1).Truthy() {
				height = "0"
			} else if height, err = sizeLiteral(a, 1); err != nil {
				return "", err
			}
		}
		fixed, err := cssmixin.ParseFixed(width, height)
		if err != nil {
			return "", fmt.Errorf("%w: centering: %v", ErrArgument, err)
		}
		return cssmixin.Center(fixed).String(), nil
	}

	if a.isNull(2) {
		return cssmixin.Center(cssmixin.None{}).String(), nil
	}
	opts, err := a.object(2)
	if err != nil {
		return "", err
	}
	var mode string
	if v := opts.Get("type"); v != nil && v.String != nil {
		mode = string(*v.String)
	}
	switch mode {
	case "absolute":
		return cssmixin.Center(cssmixin.Stretch{}).String(), nil
	case "translate":
		return cssmixin.Center(cssmixin.Translate{}).String(), nil
	default:
		return cssmixin.Center(cssmixin.None{}).String(), nil
	}
}

// sizeLiteral reads a size for fixed centering as text, so that numbers and
// pixel strings go through the same integer parsing.
func sizeLiteral(a *arguments, i int) (string, error) {
	v := a.get(i)
	switch {
	case v != nil && v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'f', -1, 64), nil
	case v != nil && v.String != nil:
		return string(*v.String), nil
	}
	return "", a.mismatch(i, "a number or string")
}

// fontHelper adapts a (fontSize, lineHeight?, letterSpacing?) helper.
func fontHelper(fn func(float64, ...cssmixin.FontOption) cssmixin.Style) helperFunc {
	return func(_ *Evaluator, a *arguments) (string, error) {
		if err := a.max(3); err != nil {
			return "", err
		}
		size, err := a.number(0)
		if err != nil {
			return "", err
		}
		var opts []cssmixin.FontOption
		lh, err := a.optNumber(1)
		if err != nil {
			return "", err
		}
		if lh != nil {
			opts = append(opts, cssmixin.WithLineHeight(*lh))
		}
		ls, err := a.optNumber(2)
		if err != nil {
			return "", err
		}
		if ls != nil {
			opts = append(opts, cssmixin.WithLetterSpacing(*ls))
		}
		return fn(size, opts...).String(), nil
	}
}

func mediaHelper(label cssmixin.Breakpoint) helperFunc {
	return func(e *Evaluator, a *arguments) (string, error) {
		if err := a.max(1); err != nil {
			return "", err
		}
		block, err := a.style(0)
		if err != nil {
			return "", err
		}
		out, err := e.mixin.Wrap(label, block)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnknownHelper, err)
		}
		return out.String(), nil
	}
}

// bgImg(file, position = 'center top', repeat?, color?, size?)
func evalBgImg(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(5); err != nil {
		return "", err
	}
	file, err := a.str(0)
	if err != nil {
		return "", err
	}
	var parts [4]string
	for i := range parts {
		if parts[i], err = a.optStr(i + 1); err != nil {
			return "", err
		}
	}
	var opts []cssmixin.BgOption
	if parts[1] != "" {
		opts = append(opts, cssmixin.WithRepeat(parts[1]))
	}
	if parts[2] != "" {
		opts = append(opts, cssmixin.WithColor(parts[2]))
	}
	if parts[3] != "" {
		opts = append(opts, cssmixin.WithSize(parts[3]))
	}
	return cssmixin.BgImg(file, parts[0], opts...).String(), nil
}

// bgImgMultiple({fileName, positions?, repeat?, bgColor?, sizes?})
func evalBgImgMultiple(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(1); err != nil {
		return "", err
	}
	o, err := a.object(0)
	if err != nil {
		return "", err
	}
	path := a.call.Path()

	var l cssmixin.Layers
	fields := []struct {
		key string
		dst *[]string
	}{
		{"fileName", &l.FileName},
		{"positions", &l.Positions},
		{"repeat", &l.Repeat},
		{"bgColor", &l.BgColor},
		{"sizes", &l.Sizes},
	}
	for _, f := range fields {
		if *f.dst, err = stringList(path, o, f.key); err != nil {
			return "", err
		}
	}
	return cssmixin.BgImgMultiple(l).String(), nil
}

// toggleDisplay(visible, transition?, duration = 0.5, easing = '')
func evalToggleDisplay(_ *Evaluator, a *arguments) (string, error) {
	if err := a.max(4); err != nil {
		return "", err
	}
	visible, err := a.boolean(0)
	if err != nil {
		return "", err
	}
	if a.isNull(1) {
		return cssmixin.ToggleDisplay(visible).String(), nil
	}

	duration := cssmixin.DefaultTransitionDuration
	d, err := a.optNumber(2)
	if err != nil {
		return "", err
	}
	if d != nil {
		duration = *d
	}
	easing, err := a.optStr(3)
	if err != nil {
		return "", err
	}
	return cssmixin.ToggleDisplayTransition(visible, duration, easing).String(), nil
}
