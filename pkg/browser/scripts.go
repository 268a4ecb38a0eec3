package browser

// In-page scripts, written as function literals so the osa call serializer
// can bind arguments structurally. Each script returns a JSON string when
// it has structured data to report; the Go side parses leniently.

// readyStateScript reports the document loading state.
const readyStateScript = `function() { return document.readyState; }`

// selectorPresentScript reports whether a selector currently matches.
const selectorPresentScript = `function(sel) {
	try { return document.querySelector(sel) ? 'true' : 'false'; }
	catch (e) { return 'false'; }
}`

// pageInfoScript reports the viewport metrics used for pagination.
const pageInfoScript = `function() {
	return JSON.stringify({
		innerHeight: window.innerHeight,
		scrollHeight: document.documentElement.scrollHeight || document.body.scrollHeight || 0,
		scrollOffset: window.pageYOffset || document.documentElement.scrollTop || 0
	});
}`

// scrollToScript scrolls the window to an absolute vertical offset.
const scrollToScript = `function(offset) {
	window.scrollTo(0, offset);
	return String(window.pageYOffset);
}`

// scrollByScript scrolls the window by a signed vertical delta.
const scrollByScript = `function(delta) {
	window.scrollBy(0, delta);
	return String(window.pageYOffset);
}`

// readHTMLScript returns the outer HTML of the page, or of the first match
// for a selector. An empty string signals a selector miss.
const readHTMLScript = `function(sel) {
	if (sel) {
		var el = document.querySelector(sel);
		return el ? el.outerHTML : '';
	}
	return document.documentElement.outerHTML;
}`

// historyScript moves through session history by a signed step count.
const historyScript = `function(steps) {
	window.history.go(steps);
	return 'ok';
}`

// reloadScript reloads the page; hard forces a cache bypass.
const reloadScript = `function(hard) {
	if (hard) { window.location.reload(true); } else { window.location.reload(); }
	return 'ok';
}`

// pressKeyScript dispatches a full key event sequence for a named key to
// the focused element.
const pressKeyScript = `function(key, code, keyCode) {
	var target = document.activeElement || document.body;
	var opts = {key: key, code: code, keyCode: keyCode, which: keyCode, bubbles: true, cancelable: true};
	target.dispatchEvent(new KeyboardEvent('keydown', opts));
	target.dispatchEvent(new KeyboardEvent('keypress', opts));
	target.dispatchEvent(new KeyboardEvent('keyup', opts));
	return JSON.stringify({description: 'Pressed ' + key + ' on ' + (target.tagName || 'page').toLowerCase()});
}`

// clickScript is the element resolution and click engine. Resolution order:
// explicit coordinates, then a bare selector clicked unconditionally, then
// text search: an accessible-label pass, a prioritized interactive-selector
// pass, and finally every element. Within each pass all candidates are
// compared and the shortest matching text wins among visible elements, so a
// 7-character button beats the page body that also contains the text. Ties
// keep the first candidate encountered in priority order.
const clickScript = `function(text, scope, x, y) {
	function isVisible(el) {
		if (!el.getBoundingClientRect) return false;
		var r = el.getBoundingClientRect();
		if (r.width <= 0 || r.height <= 0) return false;
		var s = window.getComputedStyle(el);
		if (s.display === 'none' || s.visibility === 'hidden') return false;
		if (parseFloat(s.opacity) === 0) return false;
		return true;
	}
	function textFor(el) {
		var t = (el.innerText || el.textContent || '').trim();
		if (!t && el.value !== undefined && el.value !== null) t = String(el.value).trim();
		if (!t && el.getAttribute) t = (el.getAttribute('aria-label') || '').trim();
		if (!t && el.getAttribute) t = (el.getAttribute('alt') || '').trim();
		if (!t && el.querySelector) {
			var img = el.querySelector('img[alt]');
			if (img) t = (img.getAttribute('alt') || '').trim();
		}
		return t;
	}
	function describe(el, how) {
		var tag = el.tagName ? el.tagName.toLowerCase() : 'element';
		var label = textFor(el);
		if (label.length > 80) label = label.slice(0, 77) + '...';
		return 'Clicked ' + tag + (label ? ' "' + label + '"' : '') + ' via ' + how;
	}
	function fire(el, how) {
		if (el.scrollIntoView) el.scrollIntoView({block: 'center'});
		el.click();
		return JSON.stringify({description: describe(el, how)});
	}
	function miss(what) {
		return JSON.stringify({description: 'No element found ' + what});
	}

	if (x !== null && y !== null) {
		var at = document.elementFromPoint(x, y);
		if (!at) return miss('at coordinates ' + x + ',' + y);
		return fire(at, 'coordinates');
	}

	if (scope && !text) {
		var direct = document.querySelector(scope);
		if (!direct) return miss('for selector ' + scope);
		return fire(direct, 'selector');
	}

	var root = document;
	if (scope) {
		root = document.querySelector(scope);
		if (!root) return miss('for selector ' + scope);
	}

	var needle = text.toLowerCase();
	var best = null;
	var bestLen = Infinity;

	var labeled = root.querySelectorAll('[aria-label]');
	for (var i = 0; i < labeled.length; i++) {
		var el = labeled[i];
		var label = (el.getAttribute('aria-label') || '').trim();
		if (!label || label.toLowerCase().indexOf(needle) === -1) continue;
		if (!isVisible(el)) continue;
		if (label.length < bestLen) { best = el; bestLen = label.length; }
	}
	if (best) return fire(best, 'accessible label');

	var priority = ['a', 'button', '[role="button"]', '[role="link"]', '[role="menuitem"]',
		'[role="tab"]', 'input[type="submit"]', 'input[type="button"]', '[onclick]',
		'label', 'summary'];
	for (var p = 0; p < priority.length; p++) {
		var candidates = root.querySelectorAll(priority[p]);
		for (var j = 0; j < candidates.length; j++) {
			var cand = candidates[j];
			var candText = textFor(cand);
			if (!candText || candText.toLowerCase().indexOf(needle) === -1) continue;
			if (!isVisible(cand)) continue;
			if (candText.length < bestLen) { best = cand; bestLen = candText.length; }
		}
	}
	if (best) return fire(best, 'interactive element');

	var all = root.querySelectorAll('*');
	for (var k = 0; k < all.length; k++) {
		var any = all[k];
		var anyText = textFor(any);
		if (!anyText || anyText.toLowerCase().indexOf(needle) === -1) continue;
		if (!isVisible(any)) continue;
		if (anyText.length < bestLen) { best = any; bestLen = anyText.length; }
	}
	if (best) return fire(best, 'text match');

	return miss('matching "' + text + '"');
}`

// typeScript sets a value on an editable element. Target resolution:
// explicit selector, then the focused editable element, then the first
// visible text-like input in document order. The write goes through the
// prototype's native value setter so frameworks that replace the instance
// accessor still observe the change through the input and change events
// fired afterwards.
const typeScript = `function(text, selector, append, submit) {
	function isVisible(el) {
		if (!el.getBoundingClientRect) return false;
		var r = el.getBoundingClientRect();
		if (r.width <= 0 || r.height <= 0) return false;
		var s = window.getComputedStyle(el);
		return s.display !== 'none' && s.visibility !== 'hidden';
	}
	function isEditable(el) {
		if (!el || !el.tagName) return false;
		var tag = el.tagName.toLowerCase();
		if (tag === 'textarea') return true;
		if (tag !== 'input') return el.isContentEditable === true;
		var type = (el.getAttribute('type') || 'text').toLowerCase();
		return ['hidden', 'button', 'submit', 'reset', 'checkbox', 'radio', 'file', 'image'].indexOf(type) === -1;
	}

	var target = null;
	if (selector) {
		target = document.querySelector(selector);
	} else if (isEditable(document.activeElement)) {
		target = document.activeElement;
	} else {
		var fields = document.querySelectorAll('input, textarea');
		for (var i = 0; i < fields.length; i++) {
			if (isEditable(fields[i]) && isVisible(fields[i])) { target = fields[i]; break; }
		}
	}
	if (!target) return JSON.stringify({description: 'No input element found'});

	if (target.isContentEditable) {
		target.textContent = append ? target.textContent + text : text;
		target.dispatchEvent(new Event('input', {bubbles: true}));
	} else {
		var value = append ? (target.value || '') + text : text;
		var proto = target.tagName.toLowerCase() === 'textarea'
			? window.HTMLTextAreaElement.prototype
			: window.HTMLInputElement.prototype;
		var desc = Object.getOwnPropertyDescriptor(proto, 'value');
		if (desc && desc.set) { desc.set.call(target, value); } else { target.value = value; }
		target.dispatchEvent(new Event('input', {bubbles: true}));
		target.dispatchEvent(new Event('change', {bubbles: true}));
	}

	if (submit) {
		var opts = {key: 'Enter', code: 'Enter', keyCode: 13, which: 13, bubbles: true, cancelable: true};
		target.dispatchEvent(new KeyboardEvent('keydown', opts));
		target.dispatchEvent(new KeyboardEvent('keypress', opts));
		target.dispatchEvent(new KeyboardEvent('keyup', opts));
		if (target.form) target.form.submit();
	}

	var how = selector ? 'selector' : 'focused or first visible input';
	var what = (target.tagName || 'element').toLowerCase();
	return JSON.stringify({description: 'Typed into ' + what + ' via ' + how + (submit ? ', submitted' : '')});
}`

// consoleCaptureScript installs error and warning interception on the page
// global scope. Installation is idempotent: the marker short-circuits a
// second install, so two-phase injection never duplicates records.
const consoleCaptureScript = `function() {
	if (window.__sableCapture) return 'installed';
	window.__sableCapture = true;
	window.__sableErrors = [];
	window.__sableWarnings = [];

	function format(args) {
		var parts = [];
		for (var i = 0; i < args.length; i++) {
			var a = args[i];
			if (typeof a === 'string') { parts.push(a); continue; }
			try { parts.push(JSON.stringify(a)); } catch (e) { parts.push(String(a)); }
		}
		return parts.join(' ');
	}

	var origError = console.error;
	console.error = function() {
		window.__sableErrors.push(format(arguments));
		origError.apply(console, arguments);
	};
	var origWarn = console.warn;
	console.warn = function() {
		window.__sableWarnings.push(format(arguments));
		origWarn.apply(console, arguments);
	};

	window.addEventListener('error', function(e) {
		var loc = '';
		if (e.filename) loc = ' (' + e.filename.split('/').pop() + ':' + e.lineno + ')';
		window.__sableErrors.push((e.message || 'Script error') + loc);
	});
	window.addEventListener('unhandledrejection', function(e) {
		var r = e.reason;
		window.__sableErrors.push('Unhandled rejection: ' + (r && r.message ? r.message : String(r)));
	});
	return 'installed';
}`

// consoleReadScript reads back the captured records.
const consoleReadScript = `function() {
	return JSON.stringify({
		errors: window.__sableErrors || [],
		warnings: window.__sableWarnings || []
	});
}`
