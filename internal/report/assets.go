package report

// primaryColor is the accent used for active tabs and section titles.
const primaryColor = "#2563eb"

const pageCSS = `
:root{--primary:` + primaryColor + `;--bg:#f9fafb;--panel:#ffffff;--muted:#6b7280;--ok:#16a34a;--warn:#ea580c;--bad:#dc2626;--chip:#eef2ff;--text:#111827;--border:#e5e7eb}
*{box-sizing:border-box}body{margin:0;background:var(--bg);color:var(--text);font-family:Inter,system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,"Helvetica Neue",Arial,sans-serif}a{color:inherit;text-decoration:none}
.container{max-width:1200px;margin:24px auto;padding:0 16px}
.h1{font-size:22px;margin:0 0 12px;font-weight:700}
.toolbar{display:flex;flex-wrap:wrap;gap:12px;align-items:center;justify-content:space-between;margin:12px 0}
.tabs{display:flex;gap:8px}
.tab{padding:8px 12px;border-radius:8px;background:#e5e7eb;cursor:pointer;color:#374151}.tab.active{background:var(--primary);color:#fff}
.filters{display:flex;flex-wrap:wrap;gap:12px;align-items:center}
.checkbox-list label{margin-right:10px;font-size:13px}
input[type='search']{padding:8px 10px;border:1px solid var(--border);border-radius:8px;min-width:260px}
.table{width:100%;border-collapse:separate;border-spacing:0 8px}
.tr{background:var(--panel);border:1px solid var(--border);border-radius:10px;overflow:hidden}
.td{padding:10px 12px;vertical-align:top;font-size:13px;color:#374151}
.url{white-space:nowrap;overflow:hidden;text-overflow:ellipsis;max-width:560px;display:inline-block}
.badge{display:inline-block;padding:2px 6px;border-radius:999px;font-size:11px;margin-right:6px;background:var(--chip);color:#3730a3;border:1px solid #c7d2fe}
.badge.good{background:#ecfdf5;color:#065f46;border-color:#a7f3d0}
.badge.warn{background:#fff7ed;color:#9a3412;border-color:#fed7aa}
.badge.bad{background:#fef2f2;color:#7f1d1d;border-color:#fecaca}
.code{background:#f3f4f6;border:1px solid var(--border);border-radius:8px;padding:8px;overflow:auto;max-height:280px;white-space:pre-wrap}
.kv{margin:6px 0 0 0;padding-left:18px}
.kv li{margin:2px 0}
.section-title{color:#1d4ed8;margin:6px 0 4px 0;font-weight:600}
.expand{cursor:pointer}
.details{display:none;padding:8px 12px 12px 12px;border-top:1px solid var(--border);background:#fafafa}
.diff .old{background:#fee2e2;color:#7f1d1d;padding:0 3px;border-radius:4px}
.diff .new{background:#dcfce7;color:#065f46;padding:0 3px;border-radius:4px}
.checkbox-list{display:flex;flex-wrap:wrap;gap:8px}
`

const pageJS = `
function showTab(name){document.querySelectorAll('.tab').forEach(t=>t.classList.remove('active'));document.querySelectorAll('.panel').forEach(p=>p.style.display='none');document.getElementById('panel-'+name).style.display='block';document.getElementById('tab-'+name).classList.add('active');filterRows()}
function toggleDetails(id){const el=document.getElementById(id);el.style.display=(el.style.display==='table-row'?'none':'table-row')}
function getCheckedDomains(){return Array.from(document.querySelectorAll('.domain-checkbox')).filter(c=>c.checked).map(c=>c.value)}
function savePrefs(){const prefs={domains:getCheckedDomains(),search:document.getElementById('searchBox').value};localStorage.setItem('harcmpPrefs',JSON.stringify(prefs))}
function loadPrefs(){try{const p=JSON.parse(localStorage.getItem('harcmpPrefs')||'{}');if(p.search!==undefined){document.getElementById('searchBox').value=p.search}if(p.domains&&p.domains.length){document.querySelectorAll('.domain-checkbox').forEach(c=>{c.checked=p.domains.includes(c.value)})}}catch(e){}}
function onFilterChanged(){savePrefs();filterRows()}
function filterRows(){const s=(document.getElementById('searchBox').value||'').toLowerCase();const ds=new Set(getCheckedDomains());document.querySelectorAll('[data-row="req"]').forEach(r=>{const domain=r.getAttribute('data-domain');const name=(r.getAttribute('data-name')||'').toLowerCase();const domOk=ds.size===0||ds.has(domain);const sOk=s===''||name.includes(s);r.style.display=(domOk&&sOk)?'table-row':'none';const det=document.getElementById(r.getAttribute('data-detail-id'));if(det){det.style.display='none'}})}
function selectAllDomains(checked){document.querySelectorAll('.domain-checkbox').forEach(c=>c.checked=checked);onFilterChanged()}
window.addEventListener('DOMContentLoaded',()=>{loadPrefs();filterRows()});
`
